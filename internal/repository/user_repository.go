package repository

import (
	"errors"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail devolve nil sem erro quando o e-mail não está cadastrado.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("created_at desc").Find(&users).Error
	return users, err
}

// FindActiveEmployees devolve funcionários ativos, opcionalmente filtrados
// por departamento.
func (r *UserRepository) FindActiveEmployees(department string) ([]model.User, error) {
	q := r.DB.Where("role = ? AND active = ?", model.Funcionario, true)
	if department != "" {
		q = q.Where("department = ?", department)
	}
	var users []model.User
	err := q.Order("name asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// Delete remove o usuário fisicamente; o e-mail tem índice único e precisa
// ficar livre para um novo cadastro.
func (r *UserRepository) Delete(id string) error {
	return r.DB.Unscoped().Where("id = ?", id).Delete(&model.User{}).Error
}

// UpdateAchievements grava as medalhas e o título recalculados após uma
// tentativa de simulado.
func (r *UserRepository) UpdateAchievements(id string, medals model.StringList, title string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"medals": medals, "title": title}).Error
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}
