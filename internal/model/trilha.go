package model

// Trilha é uma sequência ordenada de treinamentos com desbloqueio estrito:
// o passo N+1 fica bloqueado até o treinamento do passo N ser concluído.
type Trilha struct {
	UUIDBase
	Title       string     `gorm:"size:200;not null" json:"titulo"`
	Description string     `gorm:"type:text" json:"descricao"`
	Department  string     `gorm:"size:100;default:'Todos'" json:"departamento"`
	Active      bool       `gorm:"default:true" json:"ativo"`
	TrainingIDs StringList `gorm:"type:json" json:"treinamentos"`
}

func (Trilha) TableName() string {
	return "trilhas"
}

// AvailableTo informa se a trilha é visível para o departamento dado.
func (t *Trilha) AvailableTo(department string) bool {
	return t.Active && (t.Department == DepartmentAll || t.Department == department)
}
