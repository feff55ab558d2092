package model

type UserRole string

const (
	Admin       UserRole = "admin"
	Funcionario UserRole = "funcionario"
)

// DepartmentAll é o valor sentinela que torna um conteúdo visível para todos
// os departamentos.
const DepartmentAll = "Todos"

// swagger:model User
type User struct {
	UUIDBase
	Name       string     `gorm:"size:100;not null" json:"nome"`
	Email      string     `gorm:"size:100;unique;not null" json:"email"`
	Password   string     `gorm:"size:100;not null" json:"-"`
	Role       UserRole   `gorm:"type:enum('admin','funcionario');default:'funcionario'" json:"tipo"`
	Department string     `gorm:"size:100" json:"departamento"`
	Active     bool       `gorm:"default:true" json:"ativo"`
	Medals     StringList `gorm:"type:json" json:"medalhas"`
	Title      string     `gorm:"size:50;default:'Iniciante'" json:"titulo"`
}

func (User) TableName() string {
	return "usuarios"
}

// PublicProfile devolve o perfil sem a credencial, no formato guardado na
// sessão do cliente.
func (u *User) PublicProfile() User {
	p := *u
	p.Password = ""
	return p
}
