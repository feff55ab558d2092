package service

import (
	"math"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"
)

// Escalas de pontuação: simulados usam 0-100, questionários de treinamento 0-10.
const (
	ScaleExam     = 100
	ScaleTraining = 10
)

// GradeResult resume a correção de um conjunto de respostas.
type GradeResult struct {
	Score          float64 `json:"nota"`
	CorrectCount   int     `json:"acertos"`
	TotalQuestions int     `json:"totalQuestoes"`
}

// Grade corrige as respostas contra o gabarito das questões. Respostas
// ausentes ou fora do intervalo de alternativas contam como erro. Questões
// sem gabarito definido não são corrigíveis e tornam o conjunto inválido.
func Grade(questions []model.QuizQuestion, answers map[int]int, scale int) (GradeResult, error) {
	total := len(questions)
	if total == 0 {
		return GradeResult{}, util.ErrInvalidQuestionSet
	}
	correct := 0
	for i, q := range questions {
		if q.CorrectOption == nil {
			return GradeResult{}, util.ErrInvalidQuestionSet
		}
		answer, ok := answers[i]
		if !ok {
			continue
		}
		if answer == *q.CorrectOption {
			correct++
		}
	}
	score := math.Round(float64(correct) / float64(total) * float64(scale))
	return GradeResult{Score: score, CorrectCount: correct, TotalQuestions: total}, nil
}
