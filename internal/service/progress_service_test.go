package service

import (
	"testing"
	"time"

	"treinahub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func training(id, title string) model.Training {
	t := model.Training{Title: title, Active: true, Department: model.DepartmentAll}
	t.ID = id
	return t
}

func completion(trainingID string, at time.Time, points int) model.Historico {
	return model.Historico{
		TrainingID:   trainingID,
		Completed:    true,
		CompletedAt:  &at,
		PointsEarned: points,
	}
}

func TestAggregateProgress(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	available := []model.Training{
		training("t1", "Segurança"),
		training("t2", "Qualidade"),
		training("t3", "Onboarding"),
	}
	records := []model.Historico{
		completion("t1", now.Add(-time.Hour), 5),
		completion("t2", now.Add(-2*time.Hour), 5),
		{TrainingID: "t3", Completed: false, WatchedSeconds: 120},
	}

	summary := AggregateProgress(available, records, now)
	assert.Equal(t, 3, summary.TotalAvailable)
	assert.Equal(t, 2, summary.Completed)
	assert.InDelta(t, 66.67, summary.Percent, 0.01)
	assert.Equal(t, 10, summary.TotalPoints)
	assert.Len(t, summary.RecentCompletions, 2)
	// Mais recente primeiro.
	assert.Equal(t, "Segurança", summary.RecentCompletions[0].TrainingTitle)
}

func TestAggregateProgressAverageScore(t *testing.T) {
	now := time.Now()
	scored := func(id string, score int) model.Historico {
		rec := completion(id, now, 5)
		rec.QuizScore = &score
		return rec
	}
	available := []model.Training{
		training("t1", "Ta"),
		training("t2", "Tb"),
		training("t3", "Tc"),
	}
	records := []model.Historico{
		scored("t1", 8),
		scored("t2", 9),
		// Conclusão sem questionário não entra na média.
		completion("t3", now, 5),
	}
	summary := AggregateProgress(available, records, now)
	assert.Equal(t, 8.5, summary.AverageScore)

	empty := AggregateProgress(available, nil, now)
	assert.Equal(t, float64(0), empty.AverageScore)
}

func TestAggregateProgressRecentLimit(t *testing.T) {
	now := time.Now()
	var available []model.Training
	var records []model.Historico
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		available = append(available, training(id, "T"+id))
		records = append(records, completion(id, now.Add(-time.Duration(i)*time.Hour), 5))
	}
	summary := AggregateProgress(available, records, now)
	assert.Len(t, summary.RecentCompletions, recentCompletionsLimit)
	assert.Equal(t, "Ta", summary.RecentCompletions[0].TrainingTitle)
}

func TestAggregateProgressMissingTrainingPlaceholder(t *testing.T) {
	now := time.Now()
	records := []model.Historico{completion("apagado", now, 5)}
	summary := AggregateProgress(nil, records, now)
	assert.Equal(t, 0, summary.Completed)
	assert.Len(t, summary.RecentCompletions, 1)
	assert.Equal(t, "Treinamento não encontrado", summary.RecentCompletions[0].TrainingTitle)
	assert.Equal(t, 5, summary.TotalPoints)
}

func TestAggregateProgressExpiringSoon(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	in10 := now.AddDate(0, 0, 10)
	in60 := now.AddDate(0, 0, 60)
	past := now.AddDate(0, 0, -1)

	expiring := training("t1", "Vence logo")
	expiring.ExpiresAt = &in10
	far := training("t2", "Vence longe")
	far.ExpiresAt = &in60
	expired := training("t3", "Vencido")
	expired.ExpiresAt = &past
	done := training("t4", "Concluído")
	done.ExpiresAt = &in10

	available := []model.Training{expiring, far, expired, done}
	records := []model.Historico{completion("t4", now, 5)}

	summary := AggregateProgress(available, records, now)
	assert.Len(t, summary.ExpiringSoon, 1)
	assert.Equal(t, "t1", summary.ExpiringSoon[0].ID)
}

func TestAggregateTrilhaLocking(t *testing.T) {
	trilha := model.Trilha{TrainingIDs: model.StringList{"a", "b", "c", "d"}}
	trainings := map[string]model.Training{
		"a": training("a", "Ta"),
		"b": training("b", "Tb"),
		"c": training("c", "Tc"),
		"d": training("d", "Td"),
	}

	tests := []struct {
		name      string
		completed map[string]bool
		locked    []bool
	}{
		{"nada concluído", map[string]bool{}, []bool{false, true, true, true}},
		{"primeira etapa feita", map[string]bool{"a": true}, []bool{false, false, true, true}},
		{"salto na sequência", map[string]bool{"a": true, "c": true}, []bool{false, false, true, true}},
		{"tudo concluído", map[string]bool{"a": true, "b": true, "c": true, "d": true}, []bool{false, false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := AggregateTrilha(trilha, trainings, tt.completed)
			assert.Len(t, progress.Steps, 4)
			for i, want := range tt.locked {
				assert.Equal(t, want, progress.Steps[i].Locked, "etapa %d", i)
			}
			assert.Equal(t, len(tt.completed) == 4, progress.IsCompleted)
		})
	}
}

func TestAggregateTrilhaCompletedAfterLockStaysCompleted(t *testing.T) {
	trilha := model.Trilha{TrainingIDs: model.StringList{"a", "b", "c"}}
	trainings := map[string]model.Training{
		"a": training("a", "Ta"),
		"c": training("c", "Tc"),
	}
	// "c" foi concluído avulso antes de "b"; a etapa fica travada pela
	// pendência anterior, mas a conclusão não é perdida na contagem.
	progress := AggregateTrilha(trilha, trainings, map[string]bool{"a": true, "c": true})
	assert.True(t, progress.Steps[2].Completed)
	assert.True(t, progress.Steps[2].Locked)
	assert.Equal(t, 2, progress.Completed)
	assert.InDelta(t, 66.67, progress.Percent, 0.01)
}

func TestAggregateTrilhaMissingTraining(t *testing.T) {
	trilha := model.Trilha{TrainingIDs: model.StringList{"a", "sumiu"}}
	trainings := map[string]model.Training{"a": training("a", "Ta")}
	progress := AggregateTrilha(trilha, trainings, map[string]bool{"a": true})
	assert.Equal(t, "Treinamento não encontrado", progress.Steps[1].TrainingTitle)
	assert.False(t, progress.Steps[1].Locked)
}
