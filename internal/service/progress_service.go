package service

import (
	"errors"
	"math"
	"sort"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
)

const recentCompletionsLimit = 5

// ProgressSummary é o painel de progresso do funcionário.
type ProgressSummary struct {
	TotalAvailable    int                `json:"totalDisponiveis"`
	Completed         int                `json:"concluidos"`
	Percent           float64            `json:"percentual"`
	TotalPoints       int                `json:"pontosTotais"`
	AverageScore      float64            `json:"notaMedia"`
	RecentCompletions []RecentCompletion `json:"conclusoesRecentes"`
	ExpiringSoon      []model.Training   `json:"vencendoEmBreve"`
}

type RecentCompletion struct {
	TrainingID    string     `json:"treinamentoId"`
	TrainingTitle string     `json:"treinamentoTitulo"`
	CompletedAt   *time.Time `json:"concluidoEm"`
	QuizScore     *int       `json:"notaQuestionario,omitempty"`
	PointsEarned  int        `json:"pontosGanhos"`
}

// TrilhaProgress descreve uma trilha com o estado de cada etapa para um
// usuário. Etapas são destravadas em ordem: a primeira etapa não concluída
// fica disponível e todas as seguintes ficam travadas.
type TrilhaProgress struct {
	Trilha      model.Trilha `json:"trilha"`
	Steps       []TrilhaStep `json:"etapas"`
	Completed   int          `json:"concluidas"`
	IsCompleted bool         `json:"concluida"`
	Percent     float64      `json:"percentual"`
}

type TrilhaStep struct {
	TrainingID    string `json:"treinamentoId"`
	TrainingTitle string `json:"treinamentoTitulo"`
	Completed     bool   `json:"concluida"`
	Locked        bool   `json:"travada"`
}

// AggregateProgress monta o resumo a partir dos treinamentos disponíveis ao
// usuário e do seu histórico. Função pura.
func AggregateProgress(available []model.Training, records []model.Historico, now time.Time) ProgressSummary {
	byTraining := make(map[string]model.Training, len(available))
	for _, t := range available {
		byTraining[t.ID] = t
	}

	summary := ProgressSummary{TotalAvailable: len(available)}
	completed := make([]model.Historico, 0, len(records))
	var scoreSum, scoreCount int
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		summary.TotalPoints += rec.PointsEarned
		completed = append(completed, rec)
		if rec.QuizScore != nil {
			scoreSum += *rec.QuizScore
			scoreCount++
		}
		if _, ok := byTraining[rec.TrainingID]; ok {
			summary.Completed++
		}
	}
	if summary.TotalAvailable > 0 {
		summary.Percent = float64(summary.Completed) / float64(summary.TotalAvailable) * 100
	}
	if scoreCount > 0 {
		summary.AverageScore = math.Round(float64(scoreSum)/float64(scoreCount)*100) / 100
	}

	sort.SliceStable(completed, func(i, j int) bool {
		a, b := completed[i].CompletedAt, completed[j].CompletedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	if len(completed) > recentCompletionsLimit {
		completed = completed[:recentCompletionsLimit]
	}
	for _, rec := range completed {
		title := "Treinamento não encontrado"
		if t, ok := byTraining[rec.TrainingID]; ok {
			title = t.Title
		}
		summary.RecentCompletions = append(summary.RecentCompletions, RecentCompletion{
			TrainingID:    rec.TrainingID,
			TrainingTitle: title,
			CompletedAt:   rec.CompletedAt,
			QuizScore:     rec.QuizScore,
			PointsEarned:  rec.PointsEarned,
		})
	}

	doneIDs := make(map[string]bool, len(completed))
	for _, rec := range records {
		if rec.Completed {
			doneIDs[rec.TrainingID] = true
		}
	}
	for _, t := range available {
		if t.ExpiresAt == nil || doneIDs[t.ID] {
			continue
		}
		if t.ExpiresAt.After(now) && t.ExpiresAt.Before(now.AddDate(0, 0, 30)) {
			summary.ExpiringSoon = append(summary.ExpiringSoon, t)
		}
	}
	return summary
}

// AggregateTrilha calcula o estado das etapas de uma trilha. Treinamentos
// referenciados que não existem mais entram com título de ausência, sem
// quebrar a trilha.
func AggregateTrilha(trilha model.Trilha, trainings map[string]model.Training, completedIDs map[string]bool) TrilhaProgress {
	progress := TrilhaProgress{Trilha: trilha}
	locked := false
	for _, id := range trilha.TrainingIDs {
		step := TrilhaStep{TrainingID: id, TrainingTitle: "Treinamento não encontrado"}
		if t, ok := trainings[id]; ok {
			step.TrainingTitle = t.Title
		}
		step.Completed = completedIDs[id]
		// O travamento propaga para a frente mesmo sobre etapas já
		// concluídas fora de ordem.
		step.Locked = locked
		if !step.Completed {
			locked = true
		} else {
			progress.Completed++
		}
		progress.Steps = append(progress.Steps, step)
	}
	if len(progress.Steps) > 0 {
		progress.Percent = float64(progress.Completed) / float64(len(progress.Steps)) * 100
	}
	progress.IsCompleted = progress.Completed == len(progress.Steps)
	return progress
}

// ProgressService reúne os dados de progresso persistidos.
type ProgressService struct {
	trainingRepo  *repository.TrainingRepository
	historicoRepo *repository.HistoricoRepository
	trilhaRepo    *repository.TrilhaRepository
}

func NewProgressService(trainingRepo *repository.TrainingRepository, historicoRepo *repository.HistoricoRepository, trilhaRepo *repository.TrilhaRepository) *ProgressService {
	return &ProgressService{trainingRepo: trainingRepo, historicoRepo: historicoRepo, trilhaRepo: trilhaRepo}
}

func (s *ProgressService) Summary(user *model.User) (ProgressSummary, error) {
	available, err := s.trainingRepo.FindForDepartment(user.Department)
	if err != nil {
		return ProgressSummary{}, err
	}
	records, err := s.historicoRepo.FindByUser(user.ID)
	if err != nil {
		return ProgressSummary{}, err
	}
	return AggregateProgress(available, records, time.Now()), nil
}

// Certificates lista todas as conclusões do usuário com nota e pontos,
// da mais recente para a mais antiga. Treinamentos já removidos entram
// com título de ausência para não quebrar o comprovante.
func (s *ProgressService) Certificates(user *model.User) ([]RecentCompletion, error) {
	records, err := s.historicoRepo.FindByUser(user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]RecentCompletion, 0, len(records))
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		title := "Treinamento não encontrado"
		if t, err := s.trainingRepo.FindByID(rec.TrainingID); err == nil {
			title = t.Title
		} else if !errors.Is(err, util.ErrTrainingNotFound) {
			return nil, err
		}
		out = append(out, RecentCompletion{
			TrainingID:    rec.TrainingID,
			TrainingTitle: title,
			CompletedAt:   rec.CompletedAt,
			QuizScore:     rec.QuizScore,
			PointsEarned:  rec.PointsEarned,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CompletedAt, out[j].CompletedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	return out, nil
}

// Trilhas devolve as trilhas disponíveis ao usuário com o estado das etapas.
func (s *ProgressService) Trilhas(user *model.User) ([]TrilhaProgress, error) {
	trilhas, err := s.trilhaRepo.FindForDepartment(user.Department)
	if err != nil {
		return nil, err
	}
	records, err := s.historicoRepo.FindByUser(user.ID)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Completed {
			completed[rec.TrainingID] = true
		}
	}
	ids := make(map[string]bool)
	for _, t := range trilhas {
		for _, id := range t.TrainingIDs {
			ids[id] = true
		}
	}
	trainings := make(map[string]model.Training, len(ids))
	for id := range ids {
		t, err := s.trainingRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, util.ErrTrainingNotFound) {
				continue
			}
			return nil, err
		}
		trainings[id] = *t
	}
	out := make([]TrilhaProgress, 0, len(trilhas))
	for _, t := range trilhas {
		out = append(out, AggregateTrilha(t, trainings, completed))
	}
	return out, nil
}

func (s *ProgressService) Trilha(user *model.User, trilhaID string) (TrilhaProgress, error) {
	trilha, err := s.trilhaRepo.FindByID(trilhaID)
	if err != nil {
		return TrilhaProgress{}, err
	}
	all, err := s.Trilhas(user)
	if err != nil {
		return TrilhaProgress{}, err
	}
	for _, tp := range all {
		if tp.Trilha.ID == trilha.ID {
			return tp, nil
		}
	}
	// Trilha fora do departamento do usuário ainda pode ser consultada.
	records, err := s.historicoRepo.FindByUser(user.ID)
	if err != nil {
		return TrilhaProgress{}, err
	}
	completed := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Completed {
			completed[rec.TrainingID] = true
		}
	}
	trainings := make(map[string]model.Training, len(trilha.TrainingIDs))
	for _, id := range trilha.TrainingIDs {
		t, err := s.trainingRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, util.ErrTrainingNotFound) {
				continue
			}
			return TrilhaProgress{}, err
		}
		trainings[id] = *t
	}
	return AggregateTrilha(*trilha, trainings, completed), nil
}
