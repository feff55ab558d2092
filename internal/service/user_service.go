package service

import (
	"strings"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
)

type UserService struct {
	userRepo      *repository.UserRepository
	historicoRepo *repository.HistoricoRepository
	resultadoRepo *repository.ResultadoRepository
}

func NewUserService(userRepo *repository.UserRepository, historicoRepo *repository.HistoricoRepository, resultadoRepo *repository.ResultadoRepository) *UserService {
	return &UserService{userRepo: userRepo, historicoRepo: historicoRepo, resultadoRepo: resultadoRepo}
}

// Create cadastra um usuário. O e-mail é normalizado e precisa ser inédito.
func (s *UserService) Create(user *model.User, plainPassword string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	existing, err := s.userRepo.FindByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return util.ErrEmailRegistered
	}
	hashed, err := HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if user.Role == "" {
		user.Role = model.Funcionario
	}
	if user.Title == "" {
		user.Title = TitleBeginner
	}
	user.Active = true
	return s.userRepo.Create(user)
}

func (s *UserService) Get(id string) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *UserService) List() ([]model.User, error) {
	return s.userRepo.FindAll()
}

// Update grava nome, departamento e papel. E-mail trocado precisa ser inédito.
func (s *UserService) Update(user *model.User) error {
	current, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email != current.Email {
		existing, err := s.userRepo.FindByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return util.ErrEmailRegistered
		}
	}
	// Senha e conquistas não mudam por este caminho.
	current.Name = user.Name
	current.Email = email
	current.Department = user.Department
	current.Role = user.Role
	current.Active = user.Active
	if err := s.userRepo.Update(current); err != nil {
		return err
	}
	*user = *current
	return nil
}

// SetActive liga ou desliga a conta sem apagar dados.
func (s *UserService) SetActive(id string, active bool) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	user.Active = active
	return s.userRepo.Update(user)
}

// ResetProgress apaga histórico e resultados do usuário, zerando também as
// conquistas. Usado quando um funcionário troca de função ou em auditorias.
func (s *UserService) ResetProgress(id string) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.historicoRepo.DeleteByUser(id); err != nil {
		return err
	}
	if err := s.resultadoRepo.DeleteByUser(id); err != nil {
		return err
	}
	return s.userRepo.UpdateAchievements(user.ID, nil, TitleBeginner)
}

// Delete remove o usuário e todos os seus registros.
func (s *UserService) Delete(id string) error {
	if err := s.historicoRepo.DeleteByUser(id); err != nil {
		return err
	}
	if err := s.resultadoRepo.DeleteByUser(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
