package repository

import (
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type TrilhaRepository struct {
	DB *gorm.DB
}

func NewTrilhaRepository(db *gorm.DB) *TrilhaRepository {
	return &TrilhaRepository{DB: db}
}

func (r *TrilhaRepository) Create(t *model.Trilha) error {
	return r.DB.Create(t).Error
}

func (r *TrilhaRepository) FindByID(id string) (*model.Trilha, error) {
	var t model.Trilha
	err := r.DB.Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrilhaRepository) FindAll() ([]model.Trilha, error) {
	var ts []model.Trilha
	err := r.DB.Order("created_at desc").Find(&ts).Error
	return ts, err
}

func (r *TrilhaRepository) FindForDepartment(department string) ([]model.Trilha, error) {
	var ts []model.Trilha
	err := r.DB.
		Where("active = ? AND (department = ? OR department = ?)", true, department, model.DepartmentAll).
		Order("created_at desc").
		Find(&ts).Error
	return ts, err
}

func (r *TrilhaRepository) Update(t *model.Trilha) error {
	return r.DB.Omit("created_at").Save(t).Error
}

func (r *TrilhaRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Trilha{}).Error
}
