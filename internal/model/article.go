package model

// Article é um artigo da base de conhecimento.
type Article struct {
	UUIDBase
	Title      string `gorm:"size:200;not null" json:"titulo"`
	Content    string `gorm:"type:text" json:"conteudo"`
	CategoryID string `gorm:"size:36;index" json:"categoriaId"`
	Active     bool   `gorm:"default:true" json:"ativo"`
}

func (Article) TableName() string {
	return "artigos"
}
