package database

import (
	"fmt"
	"log"
	"treinahub_backend/internal/config"
	"treinahub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Training{},
			&model.Simulado{},
			&model.Historico{},
			&model.ResultadoSimulado{},
			&model.Trilha{},
			&model.Pdi{},
			&model.Category{},
			&model.Department{},
			&model.BadgeDefinition{},
			&model.Article{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	seedDefaults(db)

	return db, nil
}

// seedDefaults insere dados mínimos quando as tabelas de apoio estão vazias.
func seedDefaults(db *gorm.DB) {
	var deptCount int64
	db.Model(&model.Department{}).Count(&deptCount)
	if deptCount == 0 {
		defaults := []model.Department{
			{Name: "Contabilidade"},
			{Name: "Fiscal"},
			{Name: "Recursos Humanos"},
		}
		for _, d := range defaults {
			db.Create(&d)
		}
	}

	var catCount int64
	db.Model(&model.Category{}).Count(&catCount)
	if catCount == 0 {
		defaults := []model.Category{
			{Name: "Sistemas Internos", Color: "#3b82f6"},
			{Name: "Segurança", Color: "#ef4444"},
			{Name: "Processos", Color: "#22c55e"},
		}
		for _, c := range defaults {
			db.Create(&c)
		}
	}

	var badgeCount int64
	db.Model(&model.BadgeDefinition{}).Count(&badgeCount)
	if badgeCount == 0 {
		defaults := []model.BadgeDefinition{
			{Name: "Veterano", Description: "Concluiu 20 simulados", Icon: "medal", RuleType: model.BadgeRuleExamCount, Threshold: 20},
			{Name: "Nota Máxima", Description: "Três simulados com 100%", Icon: "star", RuleType: model.BadgeRulePerfectCount, Threshold: 3},
		}
		for _, b := range defaults {
			db.Create(&b)
		}
	}
}
