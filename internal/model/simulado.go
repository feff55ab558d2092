package model

// RetryPolicy define quantas vezes um funcionário pode repetir um simulado.
type RetryPolicy string

const (
	RetryUnlimited RetryPolicy = "ilimitado"
	RetryOnce      RetryPolicy = "unico"
	RetryMonthly   RetryPolicy = "mensal"
	RetryFixed     RetryPolicy = "limitado"
)

// swagger:model Simulado
type Simulado struct {
	UUIDBase
	Title       string       `gorm:"size:200;not null" json:"titulo"`
	Description string       `gorm:"type:text" json:"descricao"`
	Category    string       `gorm:"size:100" json:"categoria"`
	Active      bool         `gorm:"default:true" json:"ativo"`
	Questions   QuestionList `gorm:"type:json" json:"perguntas"`
	RetryPolicy RetryPolicy  `gorm:"type:enum('ilimitado','unico','mensal','limitado');default:'ilimitado'" json:"politicaTentativas"`
	// MaxAttempts só é considerado quando RetryPolicy == limitado; deve ser >= 1.
	MaxAttempts int `gorm:"default:0" json:"maxTentativas"`
}

func (Simulado) TableName() string {
	return "simulados"
}
