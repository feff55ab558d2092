package repository

import (
	"errors"
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) Create(b *model.BadgeDefinition) error {
	return r.DB.Create(b).Error
}

func (r *BadgeRepository) FindByID(id string) (*model.BadgeDefinition, error) {
	var b model.BadgeDefinition
	err := r.DB.Where("id = ?", id).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BadgeRepository) FindByName(name string) (*model.BadgeDefinition, error) {
	var b model.BadgeDefinition
	err := r.DB.Where("name = ?", name).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BadgeRepository) FindAll() ([]model.BadgeDefinition, error) {
	var bs []model.BadgeDefinition
	err := r.DB.Order("name asc").Find(&bs).Error
	return bs, err
}

func (r *BadgeRepository) Update(b *model.BadgeDefinition) error {
	return r.DB.Omit("created_at").Save(b).Error
}

func (r *BadgeRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.BadgeDefinition{}).Error
}
