package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"
	"treinahub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const importBatchSize = 200

// Snapshot é o despejo completo do acervo, chaveado pelo nome da coleção.
type Snapshot struct {
	ExportedAt  time.Time                  `json:"exportadoEm"`
	Collections map[string]json.RawMessage `json:"colecoes"`
}

// ImportReport resume a importação de um snapshot.
type ImportReport struct {
	Imported map[string]int `json:"importados"`
	Skipped  []string       `json:"ignorados,omitempty"`
}

// CSVImportReport resume a importação de usuários via planilha.
type CSVImportReport struct {
	Created int      `json:"criados"`
	Errors  []string `json:"erros,omitempty"`
}

// BackupService exporta e restaura o acervo inteiro em JSON, além de
// importar usuários em lote por CSV.
type BackupService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
}

func NewBackupService(db *gorm.DB, userRepo *repository.UserRepository) *BackupService {
	return &BackupService{db: db, userRepo: userRepo}
}

// exportOrder fixa a ordem das coleções no snapshot; a restauração segue a
// mesma ordem para que referências existam antes de quem as usa.
var exportOrder = []string{
	"departamentos",
	"categorias",
	"usuarios",
	"treinamentos",
	"simulados",
	"trilhas",
	"historico",
	"resultados_simulados",
	"pdis",
	"medalhas_definicoes",
	"artigos",
}

func collectionModel(name string) (interface{}, bool) {
	switch name {
	case "usuarios":
		return &[]model.User{}, true
	case "treinamentos":
		return &[]model.Training{}, true
	case "simulados":
		return &[]model.Simulado{}, true
	case "historico":
		return &[]model.Historico{}, true
	case "resultados_simulados":
		return &[]model.ResultadoSimulado{}, true
	case "trilhas":
		return &[]model.Trilha{}, true
	case "pdis":
		return &[]model.Pdi{}, true
	case "categorias":
		return &[]model.Category{}, true
	case "departamentos":
		return &[]model.Department{}, true
	case "medalhas_definicoes":
		return &[]model.BadgeDefinition{}, true
	case "artigos":
		return &[]model.Article{}, true
	}
	return nil, false
}

// Export lê todas as coleções e devolve o snapshot serializável.
func (s *BackupService) Export() (*Snapshot, error) {
	snap := &Snapshot{
		ExportedAt:  time.Now(),
		Collections: make(map[string]json.RawMessage, len(exportOrder)),
	}
	for _, name := range exportOrder {
		dst, _ := collectionModel(name)
		if err := s.db.Table(name).Find(dst).Error; err != nil {
			return nil, fmt.Errorf("falha ao exportar %s: %w", name, err)
		}
		payload, err := json.Marshal(dst)
		if err != nil {
			return nil, err
		}
		snap.Collections[name] = payload
	}
	return snap, nil
}

// Import restaura o snapshot APAGANDO os dados atuais de cada coleção
// presente. Exige confirmação explícita. Cada coleção roda na própria
// transação: uma falha desfaz só a coleção corrente.
func (s *BackupService) Import(snap *Snapshot, confirmed bool) (*ImportReport, error) {
	if !confirmed {
		return nil, util.ErrImportNotConfirmed
	}
	for name := range snap.Collections {
		if _, ok := collectionModel(name); !ok {
			return nil, fmt.Errorf("%w: %s", util.ErrUnknownCollection, name)
		}
	}

	report := &ImportReport{Imported: make(map[string]int)}
	for _, name := range exportOrder {
		payload, ok := snap.Collections[name]
		if !ok {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		dst, _ := collectionModel(name)
		if err := json.Unmarshal(payload, dst); err != nil {
			return nil, fmt.Errorf("coleção %s com JSON inválido: %w", name, err)
		}
		count, err := s.replaceCollection(name, dst)
		if err != nil {
			return nil, fmt.Errorf("falha ao importar %s: %w", name, err)
		}
		report.Imported[name] = count
		logger.Log.Info("coleção restaurada",
			zap.String("colecao", name),
			zap.Int("registros", count))
	}
	return report, nil
}

func (s *BackupService) replaceCollection(name string, records interface{}) (int, error) {
	switch rs := records.(type) {
	case *[]model.User:
		return replaceTable(s.db, rs)
	case *[]model.Training:
		return replaceTable(s.db, rs)
	case *[]model.Simulado:
		return replaceTable(s.db, rs)
	case *[]model.Historico:
		return replaceTable(s.db, rs)
	case *[]model.ResultadoSimulado:
		return replaceTable(s.db, rs)
	case *[]model.Trilha:
		return replaceTable(s.db, rs)
	case *[]model.Pdi:
		return replaceTable(s.db, rs)
	case *[]model.Category:
		return replaceTable(s.db, rs)
	case *[]model.Department:
		return replaceTable(s.db, rs)
	case *[]model.BadgeDefinition:
		return replaceTable(s.db, rs)
	case *[]model.Article:
		return replaceTable(s.db, rs)
	}
	return 0, fmt.Errorf("%w: %s", util.ErrUnknownCollection, name)
}

// replaceTable esvazia a tabela do modelo e regrava os registros em lotes,
// tudo dentro de uma transação.
func replaceTable[T any](db *gorm.DB, rs *[]T) (int, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var zero T
		// Remoção física: linhas com soft delete ainda seguram índices únicos.
		if err := tx.Unscoped().Where("1 = 1").Delete(&zero).Error; err != nil {
			return err
		}
		if len(*rs) == 0 {
			return nil
		}
		return tx.CreateInBatches(rs, importBatchSize).Error
	})
	return len(*rs), err
}

// csvHeader é o cabeçalho esperado da planilha de usuários. A coluna
// opcional "ativo" pode vir em seguida.
var csvHeader = []string{"nome", "email", "senha", "departamento", "tipo"}

// csvUserRow é uma linha válida da planilha, ainda sem o hash da senha.
type csvUserRow struct {
	Line       int
	Name       string
	Email      string
	Password   string
	Department string
	Role       model.UserRole
	Active     bool
}

// csvBool interpreta a coluna "ativo": "true" em qualquer caixa vale
// verdadeiro, valor ausente vale verdadeiro, o resto vale falso.
func csvBool(raw string) bool {
	v := strings.TrimSpace(raw)
	if v == "" {
		return true
	}
	return strings.EqualFold(v, "true")
}

// parseUsersCSV valida o cabeçalho e separa as linhas boas dos erros de
// formato. Função pura sobre o conteúdo da planilha.
func parseUsersCSV(r io.Reader) ([]csvUserRow, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("CSV vazio ou ilegível: %w", err)
	}
	if len(header) < len(csvHeader) {
		return nil, nil, fmt.Errorf("cabeçalho inválido: esperado %s", strings.Join(csvHeader, ","))
	}
	for i, want := range csvHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return nil, nil, fmt.Errorf("cabeçalho inválido na coluna %d: esperado %q", i+1, want)
		}
	}
	hasActive := len(header) > len(csvHeader) &&
		strings.ToLower(strings.TrimSpace(header[len(csvHeader)])) == "ativo"

	var rows []csvUserRow
	var problems []string
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			problems = append(problems, fmt.Sprintf("linha %d: %v", line, err))
			continue
		}
		row := csvUserRow{
			Line:       line,
			Name:       strings.TrimSpace(record[0]),
			Email:      strings.ToLower(strings.TrimSpace(record[1])),
			Password:   record[2],
			Department: strings.TrimSpace(record[3]),
			Role:       model.UserRole(strings.ToLower(strings.TrimSpace(record[4]))),
			Active:     true,
		}
		if hasActive && len(record) > len(csvHeader) {
			row.Active = csvBool(record[len(csvHeader)])
		}
		if row.Name == "" || row.Email == "" || row.Password == "" {
			problems = append(problems, fmt.Sprintf("linha %d: nome, e-mail e senha são obrigatórios", line))
			continue
		}
		if row.Role != model.Admin && row.Role != model.Funcionario {
			row.Role = model.Funcionario
		}
		rows = append(rows, row)
	}
	return rows, problems, nil
}

// ImportUsersCSV cadastra usuários a partir de um CSV com cabeçalho
// nome,email,senha,departamento,tipo e coluna opcional ativo. Linhas
// inválidas ou com e-mail já
// cadastrado são puladas e relatadas, sem abortar o restante.
func (s *BackupService) ImportUsersCSV(r io.Reader) (*CSVImportReport, error) {
	rows, problems, err := parseUsersCSV(r)
	if err != nil {
		return nil, err
	}
	report := &CSVImportReport{Errors: problems}
	for _, row := range rows {
		existing, err := s.userRepo.FindByEmail(row.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("linha %d: e-mail %s já cadastrado", row.Line, row.Email))
			continue
		}
		hashed, err := HashPassword(row.Password)
		if err != nil {
			return nil, err
		}
		user := &model.User{
			Name:       row.Name,
			Email:      row.Email,
			Password:   hashed,
			Department: row.Department,
			Role:       row.Role,
			Active:     row.Active,
			Title:      TitleBeginner,
		}
		if err := s.userRepo.Create(user); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("linha %d: %v", row.Line, err))
			continue
		}
		report.Created++
	}
	return report, nil
}
