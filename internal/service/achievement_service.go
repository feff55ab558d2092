package service

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/pkg/logger"

	"go.uber.org/zap"
)

// Medalhas fixas do sistema. Medalhas adicionais vêm de medalhas_definicoes.
const (
	MedalFirstExam     = "Primeiro Simulado"
	MedalPerfectionist = "Perfeccionista"
	MedalMarathoner    = "Maratonista"
	MedalDedicated     = "Dedicado"
)

// Títulos em ordem decrescente de exigência.
const (
	TitleMaster     = "Mestre do Conhecimento"
	TitleSpecialist = "Especialista"
	TitleConnoiseur = "Conhecedor"
	TitleApprentice = "Aprendiz"
	TitleBeginner   = "Iniciante"
)

// AchievementOutcome é o resultado da reavaliação de conquistas.
type AchievementOutcome struct {
	Medals   []string `json:"medalhas"`
	Title    string   `json:"titulo"`
	NewMedal []string `json:"novasMedalhas,omitempty"`
}

// EvaluateAchievements recalcula medalhas e título a partir do histórico
// completo de resultados. Medalhas já conquistadas nunca são removidas,
// mesmo que os resultados que as justificaram sejam apagados. Função pura.
func EvaluateAchievements(current []string, results []model.ResultadoSimulado, defs []model.BadgeDefinition) AchievementOutcome {
	count := len(results)
	perfect := 0
	var sum float64
	for _, r := range results {
		sum += r.Score
		if r.Score == 100 {
			perfect++
		}
	}
	var avg float64
	if count > 0 {
		avg = sum / float64(count)
	}

	earned := make(map[string]bool, len(current))
	order := make([]string, 0, len(current)+4)
	add := func(name string) {
		if name == "" || earned[name] {
			return
		}
		earned[name] = true
		order = append(order, name)
	}
	for _, m := range current {
		add(m)
	}
	before := len(order)

	if count >= 1 {
		add(MedalFirstExam)
	}
	if perfect >= 1 {
		add(MedalPerfectionist)
	}
	if count >= 5 {
		add(MedalMarathoner)
	}
	if count >= 10 {
		add(MedalDedicated)
	}

	for _, def := range defs {
		switch def.RuleType {
		case model.BadgeRuleExamCount:
			if float64(count) >= def.Threshold {
				add(def.Name)
			}
		case model.BadgeRuleAverageAbove:
			if count > 0 && avg >= def.Threshold {
				add(def.Name)
			}
		case model.BadgeRulePerfectCount:
			if float64(perfect) >= def.Threshold {
				add(def.Name)
			}
		}
	}

	return AchievementOutcome{
		Medals:   order,
		Title:    titleForAverage(avg, count),
		NewMedal: order[before:],
	}
}

func titleForAverage(avg float64, count int) string {
	if count == 0 {
		return TitleBeginner
	}
	switch {
	case avg >= 95:
		return TitleMaster
	case avg >= 85:
		return TitleSpecialist
	case avg >= 70:
		return TitleConnoiseur
	case avg >= 50:
		return TitleApprentice
	default:
		return TitleBeginner
	}
}

// AchievementService reavalia e persiste conquistas após cada tentativa.
type AchievementService struct {
	userRepo      *repository.UserRepository
	resultadoRepo *repository.ResultadoRepository
	badgeRepo     *repository.BadgeRepository
}

func NewAchievementService(userRepo *repository.UserRepository, resultadoRepo *repository.ResultadoRepository, badgeRepo *repository.BadgeRepository) *AchievementService {
	return &AchievementService{userRepo: userRepo, resultadoRepo: resultadoRepo, badgeRepo: badgeRepo}
}

// Refresh recarrega resultados e definições e grava medalhas e título do
// usuário. Idempotente: reexecutar sem novos resultados não muda nada.
func (s *AchievementService) Refresh(user *model.User) (AchievementOutcome, error) {
	results, err := s.resultadoRepo.FindByUser(user.ID)
	if err != nil {
		return AchievementOutcome{}, err
	}
	defs, err := s.badgeRepo.FindAll()
	if err != nil {
		return AchievementOutcome{}, err
	}
	outcome := EvaluateAchievements(user.Medals, results, defs)
	if err := s.userRepo.UpdateAchievements(user.ID, outcome.Medals, outcome.Title); err != nil {
		return AchievementOutcome{}, err
	}
	if len(outcome.NewMedal) > 0 {
		logger.Log.Info("novas medalhas concedidas",
			zap.String("usuario", user.ID),
			zap.Strings("medalhas", outcome.NewMedal))
	}
	user.Medals = outcome.Medals
	user.Title = outcome.Title
	return outcome, nil
}
