package repository

import (
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(c *model.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) FindByID(id string) (*model.Category, error) {
	var c model.Category
	err := r.DB.Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll() ([]model.Category, error) {
	var cs []model.Category
	err := r.DB.Order("name asc").Find(&cs).Error
	return cs, err
}

func (r *CategoryRepository) Update(c *model.Category) error {
	return r.DB.Omit("created_at").Save(c).Error
}

func (r *CategoryRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Category{}).Error
}

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *DepartmentRepository) FindAll() ([]model.Department, error) {
	var ds []model.Department
	err := r.DB.Order("name asc").Find(&ds).Error
	return ds, err
}

func (r *DepartmentRepository) Update(d *model.Department) error {
	return r.DB.Omit("created_at").Save(d).Error
}

func (r *DepartmentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Department{}).Error
}

// InUse informa se algum usuário ou treinamento referencia o departamento.
func (r *DepartmentRepository) InUse(name string) (bool, error) {
	var count int64
	if err := r.DB.Model(&model.User{}).Where("department = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.DB.Model(&model.Training{}).Where("department = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
