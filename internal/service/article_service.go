package service

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
)

type ArticleService struct {
	articleRepo *repository.ArticleRepository
}

func NewArticleService(articleRepo *repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

func (s *ArticleService) Create(a *model.Article) error {
	return s.articleRepo.Create(a)
}

func (s *ArticleService) Update(a *model.Article) error {
	return s.articleRepo.Update(a)
}

func (s *ArticleService) Delete(id string) error {
	return s.articleRepo.Delete(id)
}

func (s *ArticleService) Get(id string) (*model.Article, error) {
	return s.articleRepo.FindByID(id)
}

func (s *ArticleService) List(page, limit int) ([]model.Article, int64, error) {
	return s.articleRepo.FindPage(page, limit)
}

func (s *ArticleService) ListPublished(page, limit int) ([]model.Article, int64, error) {
	return s.articleRepo.FindActivePage(page, limit)
}
