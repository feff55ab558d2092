package service

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
)

type PdiService struct {
	pdiRepo  *repository.PdiRepository
	userRepo *repository.UserRepository
}

func NewPdiService(pdiRepo *repository.PdiRepository, userRepo *repository.UserRepository) *PdiService {
	return &PdiService{pdiRepo: pdiRepo, userRepo: userRepo}
}

// Create exige que o plano tenha um funcionário válido como dono.
func (s *PdiService) Create(p *model.Pdi) error {
	if p.UserID == "" {
		return util.ErrPdiEmployeeRequired
	}
	if _, err := s.userRepo.FindByID(p.UserID); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = model.PdiInProgress
	}
	return s.pdiRepo.Create(p)
}

func (s *PdiService) Update(p *model.Pdi) error {
	if p.UserID == "" {
		return util.ErrPdiEmployeeRequired
	}
	return s.pdiRepo.Update(p)
}

func (s *PdiService) Delete(id string) error {
	return s.pdiRepo.Delete(id)
}

func (s *PdiService) Get(id string) (*model.Pdi, error) {
	return s.pdiRepo.FindByID(id)
}

func (s *PdiService) List() ([]model.Pdi, error) {
	return s.pdiRepo.FindAll()
}

// ListByUser devolve os planos do funcionário, para a visão dele próprio.
func (s *PdiService) ListByUser(userID string) ([]model.Pdi, error) {
	return s.pdiRepo.FindByUser(userID)
}

// SetStatus marca o plano como concluído ou reaberto.
func (s *PdiService) SetStatus(id string, status model.PdiStatus) (*model.Pdi, error) {
	p, err := s.pdiRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.Status = status
	if err := s.pdiRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
