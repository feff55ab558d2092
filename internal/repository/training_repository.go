package repository

import (
	"errors"
	"fmt"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"gorm.io/gorm"
)

type TrainingRepository struct {
	DB *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

func (r *TrainingRepository) Create(t *model.Training) error {
	return r.DB.Create(t).Error
}

func (r *TrainingRepository) FindByID(id string) (*model.Training, error) {
	var t model.Training
	err := r.DB.Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTrainingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrainingRepository) FindAll() ([]model.Training, error) {
	var ts []model.Training
	err := r.DB.Order("created_at desc").Find(&ts).Error
	return ts, err
}

// FindPage lê uma página ordenada por data de criação descendente (padrão do
// armazenamento de documentos).
func (r *TrainingRepository) FindPage(page, limit int) ([]model.Training, int64, error) {
	return paginate[model.Training](r.DB, page, limit, "")
}

// FindForDepartment devolve os treinamentos ativos visíveis para o
// departamento (escopo próprio ou "Todos").
func (r *TrainingRepository) FindForDepartment(department string) ([]model.Training, error) {
	var ts []model.Training
	err := r.DB.
		Where("active = ? AND (department = ? OR department = ?)", true, department, model.DepartmentAll).
		Order("created_at desc").
		Find(&ts).Error
	return ts, err
}

func (r *TrainingRepository) Update(t *model.Training) error {
	return r.DB.Omit("created_at").Save(t).Error
}

func (r *TrainingRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Training{}).Error
}

func (r *TrainingRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Training{}).Count(&count).Error
	return count, err
}

// paginate implementa a leitura paginada comum a todos os repositórios.
func paginate[T any](db *gorm.DB, page, limit int, where string, args ...interface{}) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = util.PageSizeDefault
	}

	var m T
	q := db.Model(&m)
	if where != "" {
		q = q.Where(where, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	order := fmt.Sprintf("%s %s", util.DefaultOrderField, util.DefaultOrderDirection)
	err := q.Order(order).Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	return items, total, err
}
