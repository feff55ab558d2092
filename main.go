// @title TreinaHub API
// @version 1.0
// @description Backend de gestão de treinamentos corporativos: treinamentos, simulados, trilhas de aprendizado, PDI e gamificação.

// @contact.name Suporte TreinaHub
// @contact.email suporte@treinahub.com.br

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"treinahub_backend/internal/app"
	"treinahub_backend/internal/config"
	"treinahub_backend/pkg/logger"
)

func main() {
	// Flags de linha de comando
	migrateOnly := flag.Bool("migrate-only", false, "executa apenas a migração do banco e encerra")
	migrate := flag.Bool("migrate", false, "força a migração do banco no boot, mesmo em release")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Falha ao carregar configuração: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Falha ao inicializar a aplicação: %v", err)
	}
	defer logger.Log.Sync()

	// A migração roda no New; aqui só encerra quando for o único objetivo.
	if *migrateOnly {
		log.Println("Migração do banco concluída, encerrando")
		return
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Falha ao executar o servidor: %v", err)
	}
}
