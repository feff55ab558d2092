package service

import (
	"testing"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestValidateSimulado(t *testing.T) {
	valid := func() *model.Simulado {
		return &model.Simulado{
			Title:       "Normas de Segurança",
			Questions:   model.QuestionList{question(0), question(1)},
			RetryPolicy: model.RetryUnlimited,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*model.Simulado)
		wantErr error
	}{
		{"válido", func(s *model.Simulado) {}, nil},
		{"sem questões", func(s *model.Simulado) { s.Questions = nil }, util.ErrQuestionnaireEmpty},
		{"questão sem gabarito", func(s *model.Simulado) {
			s.Questions = append(s.Questions, model.QuizQuestion{Prompt: "?", Options: []string{"a", "b"}})
		}, util.ErrQuestionWithoutKey},
		{"gabarito fora das alternativas", func(s *model.Simulado) {
			bad := 9
			s.Questions[0].CorrectOption = &bad
		}, util.ErrQuestionWithoutKey},
		{"limitado sem contagem", func(s *model.Simulado) {
			s.RetryPolicy = model.RetryFixed
			s.MaxAttempts = 0
		}, util.ErrRetryCountInvalid},
		{"limitado com contagem", func(s *model.Simulado) {
			s.RetryPolicy = model.RetryFixed
			s.MaxAttempts = 3
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := ValidateSimulado(s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSimuladoUnknownPolicy(t *testing.T) {
	s := &model.Simulado{
		Questions:   model.QuestionList{question(0)},
		RetryPolicy: "quinzenal",
	}
	assert.Error(t, ValidateSimulado(s))
}

func TestAttemptDeniedErrorUnwraps(t *testing.T) {
	err := &AttemptDeniedError{Reason: "Limite de 2 tentativas atingido."}
	assert.ErrorIs(t, err, util.ErrAttemptNotAllowed)
	assert.Equal(t, "Limite de 2 tentativas atingido.", err.Error())
}
