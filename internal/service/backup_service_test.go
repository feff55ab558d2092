package service

import (
	"strings"
	"testing"

	"treinahub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseUsersCSV(t *testing.T) {
	csv := strings.Join([]string{
		"nome,email,senha,departamento,tipo",
		"Ana Lima,ANA@empresa.com,segredo1,Vendas,funcionario",
		"Bruno Souza,bruno@empresa.com,segredo2,TI,admin",
		"Carla,carla@empresa.com,segredo3,RH,gerente",
	}, "\n")

	rows, problems, err := parseUsersCSV(strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Empty(t, problems)
	assert.Len(t, rows, 3)

	assert.Equal(t, "ana@empresa.com", rows[0].Email)
	assert.Equal(t, model.Funcionario, rows[0].Role)
	assert.Equal(t, model.Admin, rows[1].Role)
	// Papel desconhecido cai para funcionário.
	assert.Equal(t, model.Funcionario, rows[2].Role)
}

func TestParseUsersCSVActiveColumn(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		active bool
	}{
		{"true minúsculo", "true", true},
		{"true maiúsculo", "TRUE", true},
		{"true misto", "True", true},
		{"false", "false", false},
		{"valor qualquer", "sim", false},
		{"vazio vale ativo", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := strings.Join([]string{
				"nome,email,senha,departamento,tipo,ativo",
				"Ana,ana@empresa.com,segredo,TI,funcionario," + tt.value,
			}, "\n")
			rows, problems, err := parseUsersCSV(strings.NewReader(csv))
			assert.NoError(t, err)
			assert.Empty(t, problems)
			assert.Len(t, rows, 1)
			assert.Equal(t, tt.active, rows[0].Active)
		})
	}
}

func TestParseUsersCSVActiveDefaultsTrueWithoutColumn(t *testing.T) {
	csv := strings.Join([]string{
		"nome,email,senha,departamento,tipo",
		"Ana,ana@empresa.com,segredo,TI,funcionario",
	}, "\n")
	rows, _, err := parseUsersCSV(strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Active)
}

func TestParseUsersCSVInvalidHeader(t *testing.T) {
	csv := "name,mail,pass,dept,role\nAna,a@b.com,x,TI,admin"
	_, _, err := parseUsersCSV(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestParseUsersCSVEmpty(t *testing.T) {
	_, _, err := parseUsersCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseUsersCSVReportsBadRows(t *testing.T) {
	csv := strings.Join([]string{
		"nome,email,senha,departamento,tipo",
		",sem-nome@empresa.com,x,TI,funcionario",
		"Sem Senha,sem-senha@empresa.com,,TI,funcionario",
		"Ok,ok@empresa.com,x,TI,funcionario",
	}, "\n")

	rows, problems, err := parseUsersCSV(strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Len(t, problems, 2)
	assert.Contains(t, problems[0], "linha 2")
	assert.Contains(t, problems[1], "linha 3")
}
