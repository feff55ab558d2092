package service

import (
	"testing"
	"time"

	"treinahub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func resultWithScore(score float64) model.ResultadoSimulado {
	return model.ResultadoSimulado{Score: score, CompletedAt: time.Now()}
}

func TestEvaluateAchievementsMedals(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		medals []string
		title  string
	}{
		{
			name:   "sem tentativas",
			scores: nil,
			medals: nil,
			title:  TitleBeginner,
		},
		{
			name:   "primeira tentativa",
			scores: []float64{60},
			medals: []string{MedalFirstExam},
			title:  TitleApprentice,
		},
		{
			name:   "nota perfeita",
			scores: []float64{100},
			medals: []string{MedalFirstExam, MedalPerfectionist},
			title:  TitleMaster,
		},
		{
			name:   "cinco notas máximas",
			scores: []float64{100, 100, 100, 100, 100},
			medals: []string{MedalFirstExam, MedalPerfectionist, MedalMarathoner},
			title:  TitleMaster,
		},
		{
			name:   "dez tentativas medianas",
			scores: []float64{70, 75, 72, 80, 78, 71, 74, 76, 73, 77},
			medals: []string{MedalFirstExam, MedalMarathoner, MedalDedicated},
			title:  TitleConnoiseur,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []model.ResultadoSimulado
			for _, s := range tt.scores {
				results = append(results, resultWithScore(s))
			}
			outcome := EvaluateAchievements(nil, results, nil)
			if len(tt.medals) == 0 {
				assert.Empty(t, outcome.Medals)
			} else {
				assert.Equal(t, tt.medals, outcome.Medals)
			}
			assert.Equal(t, tt.title, outcome.Title)
		})
	}
}

func TestEvaluateAchievementsRatchet(t *testing.T) {
	// Medalhas conquistadas persistem mesmo sem os resultados que as geraram.
	current := []string{MedalFirstExam, MedalPerfectionist}
	outcome := EvaluateAchievements(current, nil, nil)
	assert.Equal(t, current, outcome.Medals)
	assert.Empty(t, outcome.NewMedal)
	assert.Equal(t, TitleBeginner, outcome.Title)
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	results := []model.ResultadoSimulado{resultWithScore(100), resultWithScore(90)}
	first := EvaluateAchievements(nil, results, nil)
	second := EvaluateAchievements(first.Medals, results, nil)
	assert.Equal(t, first.Medals, second.Medals)
	assert.Equal(t, first.Title, second.Title)
	assert.Empty(t, second.NewMedal)
}

func TestEvaluateAchievementsNewMedalDelta(t *testing.T) {
	results := []model.ResultadoSimulado{resultWithScore(100)}
	outcome := EvaluateAchievements([]string{MedalFirstExam}, results, nil)
	assert.Equal(t, []string{MedalPerfectionist}, outcome.NewMedal)
}

func TestEvaluateAchievementsCustomBadges(t *testing.T) {
	defs := []model.BadgeDefinition{
		{Name: "Veterano", RuleType: model.BadgeRuleExamCount, Threshold: 3},
		{Name: "Elite", RuleType: model.BadgeRuleAverageAbove, Threshold: 90},
		{Name: "Gabaritador", RuleType: model.BadgeRulePerfectCount, Threshold: 2},
	}
	results := []model.ResultadoSimulado{
		resultWithScore(100),
		resultWithScore(100),
		resultWithScore(80),
	}
	outcome := EvaluateAchievements(nil, results, defs)
	assert.Contains(t, outcome.Medals, "Veterano")
	assert.Contains(t, outcome.Medals, "Elite")
	assert.Contains(t, outcome.Medals, "Gabaritador")
}

func TestEvaluateAchievementsAverageBadgeNeedsAttempts(t *testing.T) {
	defs := []model.BadgeDefinition{
		{Name: "Elite", RuleType: model.BadgeRuleAverageAbove, Threshold: 90},
	}
	outcome := EvaluateAchievements(nil, nil, defs)
	assert.NotContains(t, outcome.Medals, "Elite")
}

func TestTitleLadder(t *testing.T) {
	tests := []struct {
		avg   float64
		title string
	}{
		{100, TitleMaster},
		{95, TitleMaster},
		{94.9, TitleSpecialist},
		{85, TitleSpecialist},
		{70, TitleConnoiseur},
		{50, TitleApprentice},
		{49, TitleBeginner},
		{0, TitleBeginner},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.title, titleForAverage(tt.avg, 1), "média %.1f", tt.avg)
	}
}
