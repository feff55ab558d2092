package repository

import (
	"time"
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type ResultadoRepository struct {
	DB *gorm.DB
}

func NewResultadoRepository(db *gorm.DB) *ResultadoRepository {
	return &ResultadoRepository{DB: db}
}

// Create grava uma nova tentativa. Os resultados são append-only: nunca há
// atualização de um registro existente.
func (r *ResultadoRepository) Create(res *model.ResultadoSimulado) error {
	return r.DB.Create(res).Error
}

func (r *ResultadoRepository) FindByUser(userID string) ([]model.ResultadoSimulado, error) {
	var rs []model.ResultadoSimulado
	err := r.DB.Where("user_id = ?", userID).Order("completed_at desc").Find(&rs).Error
	return rs, err
}

func (r *ResultadoRepository) FindByUserAndSimulado(userID, simuladoID string) ([]model.ResultadoSimulado, error) {
	var rs []model.ResultadoSimulado
	err := r.DB.Where("user_id = ? AND simulado_id = ?", userID, simuladoID).
		Order("completed_at desc").Find(&rs).Error
	return rs, err
}

func (r *ResultadoRepository) FindAll() ([]model.ResultadoSimulado, error) {
	var rs []model.ResultadoSimulado
	err := r.DB.Find(&rs).Error
	return rs, err
}

// FindSince devolve as tentativas concluídas a partir do instante dado;
// periodStart nulo significa sem limite inferior.
func (r *ResultadoRepository) FindSince(periodStart *time.Time) ([]model.ResultadoSimulado, error) {
	q := r.DB.Model(&model.ResultadoSimulado{})
	if periodStart != nil {
		q = q.Where("completed_at >= ?", *periodStart)
	}
	var rs []model.ResultadoSimulado
	err := q.Find(&rs).Error
	return rs, err
}

func (r *ResultadoRepository) DeleteByUser(userID string) error {
	return r.DB.Unscoped().Where("user_id = ?", userID).Delete(&model.ResultadoSimulado{}).Error
}

func (r *ResultadoRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.ResultadoSimulado{}).Count(&count).Error
	return count, err
}
