package repository

import (
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type PdiRepository struct {
	DB *gorm.DB
}

func NewPdiRepository(db *gorm.DB) *PdiRepository {
	return &PdiRepository{DB: db}
}

func (r *PdiRepository) Create(p *model.Pdi) error {
	return r.DB.Create(p).Error
}

func (r *PdiRepository) FindByID(id string) (*model.Pdi, error) {
	var p model.Pdi
	err := r.DB.Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PdiRepository) FindAll() ([]model.Pdi, error) {
	var ps []model.Pdi
	err := r.DB.Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *PdiRepository) FindByUser(userID string) ([]model.Pdi, error) {
	var ps []model.Pdi
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *PdiRepository) Update(p *model.Pdi) error {
	return r.DB.Omit("created_at").Save(p).Error
}

func (r *PdiRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Pdi{}).Error
}
