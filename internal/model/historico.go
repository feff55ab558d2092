package model

import "time"

// Historico é o registro único de conclusão de um treinamento por um usuário.
// No máximo um registro por par (usuário, treinamento); a escrita segue a
// semântica lookup-then-upsert.
type Historico struct {
	UUIDBase
	UserID         string     `gorm:"size:36;not null;uniqueIndex:idx_usuario_treinamento" json:"usuarioId"`
	TrainingID     string     `gorm:"size:36;not null;uniqueIndex:idx_usuario_treinamento" json:"treinamentoId"`
	Completed      bool       `gorm:"default:false" json:"concluido"`
	CompletedAt    *time.Time `json:"dataConclusao"`
	QuizScore      *int       `json:"notaQuestionario"` // escala 0-10
	PointsEarned   int        `gorm:"default:0" json:"pontosGanhos"`
	WatchedSeconds int        `gorm:"default:0" json:"tempoAssistido"`
}

func (Historico) TableName() string {
	return "historico"
}

// ResultadoSimulado é o registro imutável de uma tentativa de simulado.
// Append-only: cada tentativa gera um novo documento, nunca sobrescrito.
type ResultadoSimulado struct {
	UUIDBase
	UserID         string    `gorm:"size:36;not null;index" json:"usuarioId"`
	UserName       string    `gorm:"size:100" json:"usuarioNome"`
	SimuladoID     string    `gorm:"size:36;not null;index" json:"simuladoId"`
	SimuladoTitle  string    `gorm:"size:200" json:"simuladoTitulo"`
	Score          float64   `json:"pontuacao"` // percentual 0-100, já arredondado
	CorrectCount   int       `json:"acertos"`
	TotalQuestions int       `json:"totalPerguntas"`
	CompletedAt    time.Time `json:"dataConclusao"`
}

func (ResultadoSimulado) TableName() string {
	return "resultados_simulados"
}
