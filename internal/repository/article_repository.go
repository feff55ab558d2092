package repository

import (
	"treinahub_backend/internal/model"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	DB *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{DB: db}
}

func (r *ArticleRepository) Create(a *model.Article) error {
	return r.DB.Create(a).Error
}

func (r *ArticleRepository) FindByID(id string) (*model.Article, error) {
	var a model.Article
	err := r.DB.Where("id = ?", id).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) FindPage(page, limit int) ([]model.Article, int64, error) {
	return paginate[model.Article](r.DB, page, limit, "")
}

func (r *ArticleRepository) FindActivePage(page, limit int) ([]model.Article, int64, error) {
	return paginate[model.Article](r.DB, page, limit, "active = ?", true)
}

func (r *ArticleRepository) Update(a *model.Article) error {
	return r.DB.Omit("created_at").Save(a).Error
}

func (r *ArticleRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Article{}).Error
}
