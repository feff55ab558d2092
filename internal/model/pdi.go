package model

import (
	"database/sql/driver"
	"encoding/json"
)

type PdiStatus string

const (
	PdiInProgress PdiStatus = "em_andamento"
	PdiCompleted  PdiStatus = "concluido"
)

// ContentRef aponta para um treinamento ou simulado vinculado a uma meta.
type ContentRef struct {
	ContentID   string `json:"conteudoId"`
	ContentType string `json:"tipo"` // "treinamento" | "simulado"
}

// PdiGoal é uma meta do plano de desenvolvimento individual.
type PdiGoal struct {
	Title       string       `json:"titulo"`
	Description string       `json:"descricao"`
	Links       []ContentRef `json:"conteudos"`
}

type GoalList []PdiGoal

func (l GoalList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *GoalList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Pdi é o plano de desenvolvimento individual de um funcionário.
type Pdi struct {
	UUIDBase
	UserID      string    `gorm:"size:36;not null;index" json:"usuarioId"`
	Title       string    `gorm:"size:200;not null" json:"titulo"`
	Description string    `gorm:"type:text" json:"descricao"`
	Status      PdiStatus `gorm:"type:enum('em_andamento','concluido');default:'em_andamento'" json:"status"`
	Goals       GoalList  `gorm:"type:json" json:"metas"`
}

func (Pdi) TableName() string {
	return "pdis"
}
