package model

// BadgeRule identifica o tipo de regra de uma medalha configurável.
type BadgeRule string

const (
	BadgeRuleExamCount    BadgeRule = "simulados_concluidos"
	BadgeRuleAverageAbove BadgeRule = "pontuacao_media_acima"
	BadgeRulePerfectCount BadgeRule = "nota_perfeita_em"
)

// BadgeDefinition é uma medalha definida pelo admin. As quatro medalhas
// fixas do sistema convivem com estas por nomes distintos.
type BadgeDefinition struct {
	UUIDBase
	Name        string    `gorm:"size:100;unique;not null" json:"nome"`
	Description string    `gorm:"size:255" json:"descricao"`
	Icon        string    `gorm:"size:255" json:"icone"`
	RuleType    BadgeRule `gorm:"type:enum('simulados_concluidos','pontuacao_media_acima','nota_perfeita_em');not null" json:"tipoRegra"`
	Threshold   float64   `gorm:"not null" json:"valorRegra"`
}

func (BadgeDefinition) TableName() string {
	return "medalhas_definicoes"
}
