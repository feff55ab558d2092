package service

import (
	"fmt"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
)

// BadgeService administra as definições de medalhas configuráveis.
type BadgeService struct {
	badgeRepo *repository.BadgeRepository
}

func NewBadgeService(badgeRepo *repository.BadgeRepository) *BadgeService {
	return &BadgeService{badgeRepo: badgeRepo}
}

func validateBadge(b *model.BadgeDefinition) error {
	switch b.RuleType {
	case model.BadgeRuleExamCount, model.BadgeRuleAverageAbove, model.BadgeRulePerfectCount:
	default:
		return fmt.Errorf("regra de medalha desconhecida: %s", b.RuleType)
	}
	if b.Threshold <= 0 {
		return fmt.Errorf("limiar da medalha deve ser positivo")
	}
	return nil
}

func (s *BadgeService) Create(b *model.BadgeDefinition) error {
	if err := validateBadge(b); err != nil {
		return err
	}
	existing, err := s.badgeRepo.FindByName(b.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return util.ErrBadgeNameTaken
	}
	return s.badgeRepo.Create(b)
}

func (s *BadgeService) Update(b *model.BadgeDefinition) error {
	if err := validateBadge(b); err != nil {
		return err
	}
	existing, err := s.badgeRepo.FindByName(b.Name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != b.ID {
		return util.ErrBadgeNameTaken
	}
	return s.badgeRepo.Update(b)
}

func (s *BadgeService) Delete(id string) error {
	return s.badgeRepo.Delete(id)
}

func (s *BadgeService) List() ([]model.BadgeDefinition, error) {
	return s.badgeRepo.FindAll()
}
