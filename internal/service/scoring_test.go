package service

import (
	"testing"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func question(correct int) model.QuizQuestion {
	return model.QuizQuestion{
		Prompt:        "?",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: &correct,
	}
}

func TestGradeExamScale(t *testing.T) {
	questions := []model.QuizQuestion{question(0), question(1), question(2)}

	tests := []struct {
		name    string
		answers map[int]int
		score   float64
		correct int
	}{
		{"todas corretas", map[int]int{0: 0, 1: 1, 2: 2}, 100, 3},
		{"duas de três", map[int]int{0: 0, 1: 1, 2: 0}, 67, 2},
		{"uma de três", map[int]int{0: 0, 1: 3, 2: 0}, 33, 1},
		{"nenhuma resposta", map[int]int{}, 0, 0},
		{"respostas fora do gabarito", map[int]int{0: 3, 1: 2, 2: 1}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Grade(questions, tt.answers, ScaleExam)
			assert.NoError(t, err)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.correct, result.CorrectCount)
			assert.Equal(t, 3, result.TotalQuestions)
		})
	}
}

func TestGradeTrainingScale(t *testing.T) {
	questions := []model.QuizQuestion{question(0), question(1), question(2), question(3)}
	result, err := Grade(questions, map[int]int{0: 0, 1: 1, 2: 2}, ScaleTraining)
	assert.NoError(t, err)
	// 3/4 na escala 0-10 arredonda para 8.
	assert.Equal(t, float64(8), result.Score)
}

func TestGradeEmptyQuestionSet(t *testing.T) {
	_, err := Grade(nil, map[int]int{0: 0}, ScaleExam)
	assert.ErrorIs(t, err, util.ErrInvalidQuestionSet)
}

func TestGradeQuestionWithoutKey(t *testing.T) {
	questions := []model.QuizQuestion{
		question(0),
		{Prompt: "?", Options: []string{"a", "b"}},
	}
	_, err := Grade(questions, map[int]int{0: 0, 1: 0}, ScaleExam)
	assert.ErrorIs(t, err, util.ErrInvalidQuestionSet)
}
