package service

import (
	"context"
	"encoding/json"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
	"treinahub_backend/pkg/logger"
	"treinahub_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheTTL    = 10 * time.Minute
	catalogCachePrefix = "treinahub:catalogo:"
)

// CompletionResult resume a conclusão de um treinamento.
type CompletionResult struct {
	QuizGrade    *GradeResult `json:"correcao,omitempty"`
	PointsEarned int          `json:"pontosGanhos"`
}

type TrainingService struct {
	trainingRepo  *repository.TrainingRepository
	historicoRepo *repository.HistoricoRepository
	cache         *redis.Client
	defaultPoints int
}

func NewTrainingService(trainingRepo *repository.TrainingRepository, historicoRepo *repository.HistoricoRepository, cache *redis.Client, defaultPoints int) *TrainingService {
	return &TrainingService{
		trainingRepo:  trainingRepo,
		historicoRepo: historicoRepo,
		cache:         cache,
		defaultPoints: defaultPoints,
	}
}

// ValidateTraining aplica as regras de consistência antes de gravar.
func ValidateTraining(t *model.Training) error {
	for _, q := range t.Questions {
		if q.CorrectOption == nil || *q.CorrectOption < 0 || *q.CorrectOption >= len(q.Options) {
			return util.ErrQuestionWithoutKey
		}
	}
	return nil
}

func (s *TrainingService) Create(t *model.Training) error {
	if err := ValidateTraining(t); err != nil {
		return err
	}
	if err := s.trainingRepo.Create(t); err != nil {
		return err
	}
	s.invalidateCatalog(t.Department)
	return nil
}

func (s *TrainingService) Update(t *model.Training) error {
	if err := ValidateTraining(t); err != nil {
		return err
	}
	previous, err := s.trainingRepo.FindByID(t.ID)
	if err != nil {
		return err
	}
	if err := s.trainingRepo.Update(t); err != nil {
		return err
	}
	s.invalidateCatalog(previous.Department)
	s.invalidateCatalog(t.Department)
	return nil
}

func (s *TrainingService) Delete(id string) error {
	t, err := s.trainingRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.trainingRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(t.Department)
	return nil
}

func (s *TrainingService) Get(id string) (*model.Training, error) {
	return s.trainingRepo.FindByID(id)
}

func (s *TrainingService) List(page, limit int) ([]model.Training, int64, error) {
	return s.trainingRepo.FindPage(page, limit)
}

// Catalog devolve os treinamentos ativos do departamento, com cache em
// Redis. A invalidação é explícita nas escritas; o TTL só cobre falhas.
func (s *TrainingService) Catalog(ctx context.Context, department string) ([]model.Training, error) {
	key := catalogCachePrefix + department
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var trainings []model.Training
			if jsonErr := json.Unmarshal([]byte(cached), &trainings); jsonErr == nil {
				return trainings, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("falha ao ler cache do catálogo", zap.Error(err))
		}
	}
	trainings, err := s.trainingRepo.FindForDepartment(department)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if payload, err := json.Marshal(trainings); err == nil {
			if err := s.cache.Set(ctx, key, payload, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("falha ao gravar cache do catálogo", zap.Error(err))
			}
		}
	}
	return trainings, nil
}

func (s *TrainingService) invalidateCatalog(department string) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	keys := []string{catalogCachePrefix + department, catalogCachePrefix + model.DepartmentAll}
	if department == model.DepartmentAll {
		// Treinamento visível a todos invalida o catálogo de cada departamento.
		pattern := catalogCachePrefix + "*"
		found, err := s.cache.Keys(ctx, pattern).Result()
		if err == nil {
			keys = found
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("falha ao invalidar cache do catálogo", zap.Error(err))
	}
}

// applyCompletion aplica a conclusão ao registro. Com questionário as
// respostas são obrigatórias e geram a nota na escala 0-10; sem
// questionário a conclusão vale os pontos padrão, sem correção. Os pontos
// são concedidos só na primeira conclusão. Função pura fora do registro.
func applyCompletion(t *model.Training, record *model.Historico, answers map[int]int, defaultPoints int, now time.Time) (*CompletionResult, bool, error) {
	result := &CompletionResult{}
	if len(t.Questions) > 0 {
		if answers == nil {
			return nil, false, util.ErrAnswersRequired
		}
		grade, err := Grade(t.Questions, answers, ScaleTraining)
		if err != nil {
			return nil, false, err
		}
		score := int(grade.Score)
		record.QuizScore = &score
		result.QuizGrade = &grade
	}
	first := !record.Completed
	record.Completed = true
	record.CompletedAt = &now
	if first {
		record.PointsEarned = defaultPoints
	}
	result.PointsEarned = record.PointsEarned
	return result, first, nil
}

// Complete registra (ou reconfirma) a conclusão de um treinamento.
func (s *TrainingService) Complete(user *model.User, trainingID string, answers map[int]int, watchedSeconds int) (*CompletionResult, error) {
	t, err := s.trainingRepo.FindByID(trainingID)
	if err != nil {
		return nil, err
	}
	if !t.AvailableTo(user.Department) {
		return nil, util.ErrContentInactive
	}
	record, err := s.historicoRepo.FindByUserAndTraining(user.ID, trainingID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &model.Historico{UserID: user.ID, TrainingID: trainingID}
	}

	result, firstCompletion, err := applyCompletion(t, record, answers, s.defaultPoints, time.Now())
	if err != nil {
		return nil, err
	}
	if watchedSeconds > record.WatchedSeconds {
		record.WatchedSeconds = watchedSeconds
	}

	if record.ID == "" {
		err = s.historicoRepo.Create(record)
	} else {
		err = s.historicoRepo.Save(record)
	}
	if err != nil {
		return nil, err
	}
	if firstCompletion {
		monitoring.TrainingCompletions.Inc()
	}
	return result, nil
}

// Retake zera o registro de conclusão para o usuário refazer o treinamento.
func (s *TrainingService) Retake(user *model.User, trainingID string) error {
	record, err := s.historicoRepo.FindByUserAndTraining(user.ID, trainingID)
	if err != nil {
		return err
	}
	if record == nil {
		return util.ErrTrainingNotFound
	}
	record.Completed = false
	record.CompletedAt = nil
	record.QuizScore = nil
	record.PointsEarned = 0
	record.WatchedSeconds = 0
	return s.historicoRepo.Save(record)
}

// Progress grava o avanço de vídeo sem marcar conclusão.
func (s *TrainingService) Progress(user *model.User, trainingID string, watchedSeconds int) error {
	record, err := s.historicoRepo.FindByUserAndTraining(user.ID, trainingID)
	if err != nil {
		return err
	}
	if record == nil {
		record = &model.Historico{UserID: user.ID, TrainingID: trainingID, WatchedSeconds: watchedSeconds}
		return s.historicoRepo.Create(record)
	}
	if watchedSeconds > record.WatchedSeconds {
		record.WatchedSeconds = watchedSeconds
		return s.historicoRepo.Save(record)
	}
	return nil
}

// CompletionCount informa quantos usuários concluíram o treinamento.
func (s *TrainingService) CompletionCount(trainingID string) (int64, error) {
	return s.historicoRepo.CountCompleted(trainingID)
}
