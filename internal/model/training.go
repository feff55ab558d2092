package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// QuizQuestion é uma pergunta de múltipla escolha embutida em um treinamento
// ou simulado. CorrectOption é nil enquanto o admin não marcar a alternativa
// correta; a publicação exige que esteja preenchido.
type QuizQuestion struct {
	Prompt        string   `json:"pergunta"`
	Options       []string `json:"opcoes"`
	CorrectOption *int     `json:"respostaCorreta"`
}

// QuestionList é persistida como coluna JSON.
type QuestionList []QuizQuestion

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *QuestionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Attachment é um material complementar de um treinamento.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type AttachmentList []Attachment

func (l AttachmentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *AttachmentList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// swagger:model Training
type Training struct {
	UUIDBase
	Title       string         `gorm:"size:200;not null" json:"titulo"`
	Description string         `gorm:"type:text" json:"descricao"`
	VideoURL    string         `gorm:"size:500" json:"video"`
	Duration    int            `gorm:"default:0" json:"duracao"` // segundos
	CategoryID  string         `gorm:"size:36;index" json:"categoriaId"`
	Department  string         `gorm:"size:100;default:'Todos'" json:"departamento"`
	Required    bool           `gorm:"default:false" json:"obrigatorio"`
	Active      bool           `gorm:"default:true" json:"ativo"`
	ExpiresAt   *time.Time     `json:"dataExpiracao"`
	Questions   QuestionList   `gorm:"type:json" json:"perguntas"`
	Attachments AttachmentList `gorm:"type:json" json:"arquivosComplementares"`
}

func (Training) TableName() string {
	return "treinamentos"
}

// AvailableTo informa se o treinamento é visível para o departamento dado.
func (t *Training) AvailableTo(department string) bool {
	return t.Active && (t.Department == DepartmentAll || t.Department == department)
}

// Expired informa se a data de expiração já passou. Treinamentos expirados
// saem dos avisos de vencimento mas nunca são desativados automaticamente.
func (t *Training) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}
