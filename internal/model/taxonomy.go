package model

type Category struct {
	UUIDBase
	Name  string `gorm:"size:100;not null" json:"nome"`
	Color string `gorm:"size:20;default:'#3b82f6'" json:"cor"`
}

func (Category) TableName() string {
	return "categorias"
}

type Department struct {
	UUIDBase
	Name string `gorm:"size:100;unique;not null" json:"nome"`
}

func (Department) TableName() string {
	return "departamentos"
}
