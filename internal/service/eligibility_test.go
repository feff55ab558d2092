package service

import (
	"testing"
	"time"

	"treinahub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func attemptAt(t time.Time) model.ResultadoSimulado {
	return model.ResultadoSimulado{CompletedAt: t}
}

func TestCanAttemptUnlimited(t *testing.T) {
	sim := &model.Simulado{RetryPolicy: model.RetryUnlimited}
	now := time.Now()

	prior := []model.ResultadoSimulado{}
	for i := 0; i < 20; i++ {
		verdict := CanAttempt(sim, prior, now)
		assert.True(t, verdict.Allowed)
		prior = append(prior, attemptAt(now.Add(-time.Duration(i)*time.Hour)))
	}
}

func TestCanAttemptOnce(t *testing.T) {
	sim := &model.Simulado{RetryPolicy: model.RetryOnce}
	now := time.Now()

	verdict := CanAttempt(sim, nil, now)
	assert.True(t, verdict.Allowed)

	verdict = CanAttempt(sim, []model.ResultadoSimulado{attemptAt(now.AddDate(-1, 0, 0))}, now)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, "Este simulado só pode ser realizado uma vez.", verdict.Reason)
}

func TestCanAttemptMonthly(t *testing.T) {
	sim := &model.Simulado{RetryPolicy: model.RetryMonthly}
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		last    time.Time
		allowed bool
	}{
		{"sem tentativas", time.Time{}, true},
		{"tentativa no mesmo mês", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), false},
		{"tentativa no mês anterior", time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC), true},
		{"mesmo mês de outro ano", time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prior []model.ResultadoSimulado
			if !tt.last.IsZero() {
				prior = append(prior, attemptAt(tt.last))
			}
			verdict := CanAttempt(sim, prior, now)
			assert.Equal(t, tt.allowed, verdict.Allowed)
		})
	}
}

func TestCanAttemptMonthlyUsesLatestAttempt(t *testing.T) {
	sim := &model.Simulado{RetryPolicy: model.RetryMonthly}
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	// A tentativa mais recente (março) bloqueia mesmo chegando fora de ordem.
	prior := []model.ResultadoSimulado{
		attemptAt(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)),
		attemptAt(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)),
		attemptAt(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)),
	}
	verdict := CanAttempt(sim, prior, now)
	assert.False(t, verdict.Allowed)
}

func TestCanAttemptFixedLimit(t *testing.T) {
	sim := &model.Simulado{RetryPolicy: model.RetryFixed, MaxAttempts: 2}
	now := time.Now()

	verdict := CanAttempt(sim, []model.ResultadoSimulado{attemptAt(now)}, now)
	assert.True(t, verdict.Allowed)

	prior := []model.ResultadoSimulado{attemptAt(now), attemptAt(now)}
	verdict = CanAttempt(sim, prior, now)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, "Limite de 2 tentativas atingido.", verdict.Reason)
}

func TestCanAttemptWithCustomComparator(t *testing.T) {
	sim := &model.Simulado{RetryPolicy: model.RetryMonthly}
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	older := attemptAt(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	newer := attemptAt(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	// Comparador invertido elege a tentativa mais antiga como "recente".
	verdict := CanAttemptWith(sim, []model.ResultadoSimulado{older, newer}, now, EligibilityOptions{
		Less: func(a, b model.ResultadoSimulado) bool { return a.CompletedAt.Before(b.CompletedAt) },
	})
	assert.True(t, verdict.Allowed)
}
