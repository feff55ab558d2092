package repository

import (
	"errors"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"gorm.io/gorm"
)

type SimuladoRepository struct {
	DB *gorm.DB
}

func NewSimuladoRepository(db *gorm.DB) *SimuladoRepository {
	return &SimuladoRepository{DB: db}
}

func (r *SimuladoRepository) Create(s *model.Simulado) error {
	return r.DB.Create(s).Error
}

func (r *SimuladoRepository) FindByID(id string) (*model.Simulado, error) {
	var s model.Simulado
	err := r.DB.Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSimuladoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SimuladoRepository) FindPage(page, limit int) ([]model.Simulado, int64, error) {
	return paginate[model.Simulado](r.DB, page, limit, "")
}

// FindActivePage devolve só os simulados visíveis para funcionários.
func (r *SimuladoRepository) FindActivePage(page, limit int) ([]model.Simulado, int64, error) {
	return paginate[model.Simulado](r.DB, page, limit, "active = ?", true)
}

func (r *SimuladoRepository) Update(s *model.Simulado) error {
	return r.DB.Omit("created_at").Save(s).Error
}

func (r *SimuladoRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Simulado{}).Error
}

func (r *SimuladoRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Simulado{}).Count(&count).Error
	return count, err
}
