package service

import (
	"testing"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func quizTraining(questions ...model.QuizQuestion) *model.Training {
	t := &model.Training{Title: "Segurança", Active: true, Department: model.DepartmentAll}
	t.Questions = questions
	return t
}

func TestApplyCompletionWithoutQuestionnaire(t *testing.T) {
	now := time.Now()
	record := &model.Historico{UserID: "u1", TrainingID: "t1"}

	result, first, err := applyCompletion(quizTraining(), record, nil, 5, now)
	assert.NoError(t, err)
	assert.True(t, first)
	// Sem questionário não há correção: só os pontos padrão.
	assert.Nil(t, result.QuizGrade)
	assert.Nil(t, record.QuizScore)
	assert.Equal(t, 5, result.PointsEarned)
	assert.Equal(t, 5, record.PointsEarned)
	assert.True(t, record.Completed)
	assert.Equal(t, now, *record.CompletedAt)
}

func TestApplyCompletionRequiresAnswers(t *testing.T) {
	record := &model.Historico{UserID: "u1", TrainingID: "t1"}
	_, _, err := applyCompletion(quizTraining(question(0)), record, nil, 5, time.Now())
	assert.ErrorIs(t, err, util.ErrAnswersRequired)
	assert.False(t, record.Completed)
}

func TestApplyCompletionGradesQuestionnaire(t *testing.T) {
	record := &model.Historico{UserID: "u1", TrainingID: "t1"}
	training := quizTraining(question(0), question(1))

	result, first, err := applyCompletion(training, record, map[int]int{0: 0, 1: 2}, 5, time.Now())
	assert.NoError(t, err)
	assert.True(t, first)
	assert.NotNil(t, result.QuizGrade)
	assert.Equal(t, 1, result.QuizGrade.CorrectCount)
	// 1 de 2 na escala 0-10.
	assert.Equal(t, 5, *record.QuizScore)
}

func TestApplyCompletionRepeatKeepsOriginalPoints(t *testing.T) {
	done := time.Now().Add(-time.Hour)
	record := &model.Historico{
		UserID:       "u1",
		TrainingID:   "t1",
		Completed:    true,
		CompletedAt:  &done,
		PointsEarned: 3,
	}

	result, first, err := applyCompletion(quizTraining(), record, nil, 5, time.Now())
	assert.NoError(t, err)
	assert.False(t, first)
	assert.Equal(t, 3, result.PointsEarned)
	assert.Equal(t, 3, record.PointsEarned)
}
