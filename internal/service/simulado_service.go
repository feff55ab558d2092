package service

import (
	"fmt"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
	"treinahub_backend/pkg/monitoring"
)

// AttemptResult é a resposta da submissão de uma tentativa de simulado.
type AttemptResult struct {
	Grade        GradeResult `json:"correcao"`
	NewMedals    []string    `json:"novasMedalhas,omitempty"`
	CurrentTitle string      `json:"tituloAtual"`
}

// AttemptDeniedError carrega o motivo legível da recusa de tentativa.
type AttemptDeniedError struct {
	Reason string
}

func (e *AttemptDeniedError) Error() string { return e.Reason }

func (e *AttemptDeniedError) Unwrap() error { return util.ErrAttemptNotAllowed }

type SimuladoService struct {
	simuladoRepo  *repository.SimuladoRepository
	resultadoRepo *repository.ResultadoRepository
	achievements  *AchievementService
}

func NewSimuladoService(simuladoRepo *repository.SimuladoRepository, resultadoRepo *repository.ResultadoRepository, achievements *AchievementService) *SimuladoService {
	return &SimuladoService{simuladoRepo: simuladoRepo, resultadoRepo: resultadoRepo, achievements: achievements}
}

// ValidateSimulado aplica as regras de consistência antes de gravar.
func ValidateSimulado(s *model.Simulado) error {
	if len(s.Questions) == 0 {
		return util.ErrQuestionnaireEmpty
	}
	for _, q := range s.Questions {
		if q.CorrectOption == nil || *q.CorrectOption < 0 || *q.CorrectOption >= len(q.Options) {
			return util.ErrQuestionWithoutKey
		}
	}
	switch s.RetryPolicy {
	case model.RetryUnlimited, model.RetryOnce, model.RetryMonthly:
	case model.RetryFixed:
		if s.MaxAttempts < 1 {
			return util.ErrRetryCountInvalid
		}
	default:
		return fmt.Errorf("política de repetição desconhecida: %s", s.RetryPolicy)
	}
	return nil
}

func (s *SimuladoService) Create(sim *model.Simulado) error {
	if err := ValidateSimulado(sim); err != nil {
		return err
	}
	return s.simuladoRepo.Create(sim)
}

func (s *SimuladoService) Update(sim *model.Simulado) error {
	if err := ValidateSimulado(sim); err != nil {
		return err
	}
	return s.simuladoRepo.Update(sim)
}

func (s *SimuladoService) Delete(id string) error {
	return s.simuladoRepo.Delete(id)
}

func (s *SimuladoService) Get(id string) (*model.Simulado, error) {
	return s.simuladoRepo.FindByID(id)
}

func (s *SimuladoService) List(page, limit int) ([]model.Simulado, int64, error) {
	return s.simuladoRepo.FindPage(page, limit)
}

func (s *SimuladoService) ListActive(page, limit int) ([]model.Simulado, int64, error) {
	return s.simuladoRepo.FindActivePage(page, limit)
}

// Eligibility consulta se o usuário pode tentar o simulado agora.
func (s *SimuladoService) Eligibility(user *model.User, simuladoID string) (Eligibility, error) {
	sim, err := s.simuladoRepo.FindByID(simuladoID)
	if err != nil {
		return Eligibility{}, err
	}
	if !sim.Active {
		return Eligibility{}, util.ErrContentInactive
	}
	prior, err := s.resultadoRepo.FindByUserAndSimulado(user.ID, sim.ID)
	if err != nil {
		return Eligibility{}, err
	}
	return CanAttempt(sim, prior, time.Now()), nil
}

// SubmitAttempt corrige as respostas, registra o resultado e reavalia as
// conquistas do usuário. Tentativas recusadas não geram registro.
func (s *SimuladoService) SubmitAttempt(user *model.User, simuladoID string, answers map[int]int) (*AttemptResult, error) {
	sim, err := s.simuladoRepo.FindByID(simuladoID)
	if err != nil {
		return nil, err
	}
	if !sim.Active {
		return nil, util.ErrContentInactive
	}
	prior, err := s.resultadoRepo.FindByUserAndSimulado(user.ID, sim.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if verdict := CanAttempt(sim, prior, now); !verdict.Allowed {
		monitoring.ExamAttempts.WithLabelValues("denied").Inc()
		return nil, &AttemptDeniedError{Reason: verdict.Reason}
	}
	grade, err := Grade(sim.Questions, answers, ScaleExam)
	if err != nil {
		return nil, err
	}
	resultado := &model.ResultadoSimulado{
		UserID:         user.ID,
		UserName:       user.Name,
		SimuladoID:     sim.ID,
		SimuladoTitle:  sim.Title,
		Score:          grade.Score,
		CorrectCount:   grade.CorrectCount,
		TotalQuestions: grade.TotalQuestions,
		CompletedAt:    now,
	}
	if err := s.resultadoRepo.Create(resultado); err != nil {
		return nil, err
	}
	monitoring.ExamAttempts.WithLabelValues("submitted").Inc()
	outcome, err := s.achievements.Refresh(user)
	if err != nil {
		return nil, err
	}
	return &AttemptResult{
		Grade:        grade,
		NewMedals:    outcome.NewMedal,
		CurrentTitle: outcome.Title,
	}, nil
}

// History devolve as tentativas do usuário no simulado, mais recente primeiro.
func (s *SimuladoService) History(userID, simuladoID string) ([]model.ResultadoSimulado, error) {
	return s.resultadoRepo.FindByUserAndSimulado(userID, simuladoID)
}
