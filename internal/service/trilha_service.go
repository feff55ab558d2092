package service

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
)

type TrilhaService struct {
	trilhaRepo   *repository.TrilhaRepository
	trainingRepo *repository.TrainingRepository
}

func NewTrilhaService(trilhaRepo *repository.TrilhaRepository, trainingRepo *repository.TrainingRepository) *TrilhaService {
	return &TrilhaService{trilhaRepo: trilhaRepo, trainingRepo: trainingRepo}
}

// validate exige ao menos uma etapa e confere que cada treinamento existe.
func (s *TrilhaService) validate(t *model.Trilha) error {
	if len(t.TrainingIDs) == 0 {
		return util.ErrTrilhaWithoutSteps
	}
	for _, id := range t.TrainingIDs {
		if _, err := s.trainingRepo.FindByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *TrilhaService) Create(t *model.Trilha) error {
	if err := s.validate(t); err != nil {
		return err
	}
	return s.trilhaRepo.Create(t)
}

func (s *TrilhaService) Update(t *model.Trilha) error {
	if err := s.validate(t); err != nil {
		return err
	}
	return s.trilhaRepo.Update(t)
}

func (s *TrilhaService) Delete(id string) error {
	return s.trilhaRepo.Delete(id)
}

func (s *TrilhaService) Get(id string) (*model.Trilha, error) {
	return s.trilhaRepo.FindByID(id)
}

func (s *TrilhaService) List() ([]model.Trilha, error) {
	return s.trilhaRepo.FindAll()
}
