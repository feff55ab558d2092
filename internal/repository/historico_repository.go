package repository

import (
	"errors"
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type HistoricoRepository struct {
	DB *gorm.DB
}

func NewHistoricoRepository(db *gorm.DB) *HistoricoRepository {
	return &HistoricoRepository{DB: db}
}

// FindByUserAndTraining devolve o registro único do par, ou nil quando ainda
// não existe (lookup da semântica lookup-then-upsert).
func (r *HistoricoRepository) FindByUserAndTraining(userID, trainingID string) (*model.Historico, error) {
	var h model.Historico
	err := r.DB.Where("user_id = ? AND training_id = ?", userID, trainingID).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HistoricoRepository) FindByUser(userID string) ([]model.Historico, error) {
	var hs []model.Historico
	err := r.DB.Where("user_id = ?", userID).Find(&hs).Error
	return hs, err
}

func (r *HistoricoRepository) FindAll() ([]model.Historico, error) {
	var hs []model.Historico
	err := r.DB.Find(&hs).Error
	return hs, err
}

func (r *HistoricoRepository) Save(h *model.Historico) error {
	return r.DB.Save(h).Error
}

func (r *HistoricoRepository) Create(h *model.Historico) error {
	return r.DB.Create(h).Error
}

// DeleteByUser remove todos os registros do usuário (reset de dados).
// Remoção física: o índice único por (usuário, treinamento) não pode ficar
// ocupado por linhas com soft delete.
func (r *HistoricoRepository) DeleteByUser(userID string) error {
	return r.DB.Unscoped().Where("user_id = ?", userID).Delete(&model.Historico{}).Error
}

func (r *HistoricoRepository) CountCompleted(trainingID string) (int64, error) {
	q := r.DB.Model(&model.Historico{}).Where("completed = ?", true)
	if trainingID != "" {
		q = q.Where("training_id = ?", trainingID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
