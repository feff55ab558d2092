package service

import (
	"fmt"
	"sort"
	"time"
	"treinahub_backend/internal/model"
)

// Eligibility é o veredito da avaliação de tentativa.
type Eligibility struct {
	Allowed bool   `json:"permitido"`
	Reason  string `json:"motivo,omitempty"`
}

// AttemptLess ordena tentativas para decidir qual é a "mais recente". O
// padrão ordena por data de conclusão descendente; empates de timestamp
// preservam a ordem de entrada (sort estável). Implantações que preferirem
// desempate por id podem injetar outro comparador via EligibilityOptions.
type AttemptLess func(a, b model.ResultadoSimulado) bool

type EligibilityOptions struct {
	Less AttemptLess
}

func defaultAttemptLess(a, b model.ResultadoSimulado) bool {
	return a.CompletedAt.After(b.CompletedAt)
}

// CanAttempt decide se o usuário pode iniciar uma nova tentativa do simulado
// dado o histórico de tentativas anteriores. Função pura: não faz I/O.
func CanAttempt(s *model.Simulado, prior []model.ResultadoSimulado, now time.Time) Eligibility {
	return CanAttemptWith(s, prior, now, EligibilityOptions{})
}

func CanAttemptWith(s *model.Simulado, prior []model.ResultadoSimulado, now time.Time, opts EligibilityOptions) Eligibility {
	switch s.RetryPolicy {
	case model.RetryOnce:
		if len(prior) > 0 {
			return Eligibility{Allowed: false, Reason: "Este simulado só pode ser realizado uma vez."}
		}
	case model.RetryMonthly:
		last := latestAttempt(prior, opts.Less)
		if last != nil && sameMonth(last.CompletedAt, now) {
			return Eligibility{Allowed: false, Reason: "Você já realizou este simulado neste mês. Tente novamente no próximo mês."}
		}
	case model.RetryFixed:
		if len(prior) >= s.MaxAttempts {
			return Eligibility{Allowed: false, Reason: fmt.Sprintf("Limite de %d tentativas atingido.", s.MaxAttempts)}
		}
	}
	// RetryUnlimited e políticas desconhecidas liberam a tentativa.
	return Eligibility{Allowed: true}
}

func latestAttempt(prior []model.ResultadoSimulado, less AttemptLess) *model.ResultadoSimulado {
	if len(prior) == 0 {
		return nil
	}
	if less == nil {
		less = defaultAttemptLess
	}
	sorted := make([]model.ResultadoSimulado, len(prior))
	copy(sorted, prior)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return &sorted[0]
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
