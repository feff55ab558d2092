package service

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// DashboardStats alimenta o painel administrativo.
type DashboardStats struct {
	TotalUsers       int64   `json:"totalUsuarios"`
	TotalTrainings   int64   `json:"totalTreinamentos"`
	TotalSimulados   int64   `json:"totalSimulados"`
	TotalAttempts    int64   `json:"totalTentativas"`
	TotalCompletions int     `json:"totalConclusoes"`
	AverageScore     float64 `json:"pontuacaoMedia"`
	// Treinamentos ativos que vencem nos próximos 30 dias.
	ExpiringTrainings []model.Training `json:"treinamentosVencendo"`
}

// UserReportRow é uma linha do relatório geral de engajamento.
type UserReportRow struct {
	UserID             string  `json:"usuarioId"`
	Name               string  `json:"nome"`
	Email              string  `json:"email"`
	Department         string  `json:"departamento"`
	Active             bool    `json:"ativo"`
	CompletedTrainings int     `json:"treinamentosConcluidos"`
	TotalPoints        int     `json:"pontosTotais"`
	ExamAttempts       int     `json:"tentativasSimulado"`
	AverageScore       float64 `json:"pontuacaoMedia"`
	Medals             int     `json:"medalhas"`
	Title              string  `json:"titulo"`
}

// IndividualReport detalha a jornada de um único funcionário.
type IndividualReport struct {
	User        model.User               `json:"usuario"`
	Completions []RecentCompletion       `json:"conclusoes"`
	ExamResults []model.ResultadoSimulado `json:"resultados"`
	Summary     UserReportRow            `json:"resumo"`
}

type ReportService struct {
	userRepo      *repository.UserRepository
	trainingRepo  *repository.TrainingRepository
	simuladoRepo  *repository.SimuladoRepository
	historicoRepo *repository.HistoricoRepository
	resultadoRepo *repository.ResultadoRepository
}

func NewReportService(userRepo *repository.UserRepository, trainingRepo *repository.TrainingRepository, simuladoRepo *repository.SimuladoRepository, historicoRepo *repository.HistoricoRepository, resultadoRepo *repository.ResultadoRepository) *ReportService {
	return &ReportService{
		userRepo:      userRepo,
		trainingRepo:  trainingRepo,
		simuladoRepo:  simuladoRepo,
		historicoRepo: historicoRepo,
		resultadoRepo: resultadoRepo,
	}
}

func (s *ReportService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalTrainings, err = s.trainingRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalSimulados, err = s.simuladoRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalAttempts, err = s.resultadoRepo.Count(); err != nil {
		return nil, err
	}
	records, err := s.historicoRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Completed {
			stats.TotalCompletions++
		}
	}
	results, err := s.resultadoRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		var sum float64
		for _, r := range results {
			sum += r.Score
		}
		stats.AverageScore = math.Round(sum/float64(len(results))*100) / 100
	}
	trainings, err := s.trainingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, t := range trainings {
		if !t.Active || t.ExpiresAt == nil {
			continue
		}
		if t.ExpiresAt.After(now) && t.ExpiresAt.Before(now.AddDate(0, 0, 30)) {
			stats.ExpiringTrainings = append(stats.ExpiringTrainings, t)
		}
	}
	return stats, nil
}

// GeneralReport produz uma linha por usuário, incluindo quem nunca tentou.
// Com trainingID preenchido, as conclusões e pontos contam apenas aquele
// treinamento; tentativas de simulado não são filtradas.
func (s *ReportService) GeneralReport(trainingID string) ([]UserReportRow, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	records, err := s.historicoRepo.FindAll()
	if err != nil {
		return nil, err
	}
	results, err := s.resultadoRepo.FindAll()
	if err != nil {
		return nil, err
	}

	type acc struct {
		completed int
		points    int
		attempts  int
		scoreSum  float64
	}
	totals := make(map[string]*acc, len(users))
	get := func(id string) *acc {
		a := totals[id]
		if a == nil {
			a = &acc{}
			totals[id] = a
		}
		return a
	}
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		if trainingID != "" && rec.TrainingID != trainingID {
			continue
		}
		a := get(rec.UserID)
		a.completed++
		a.points += rec.PointsEarned
	}
	for _, r := range results {
		a := get(r.UserID)
		a.attempts++
		a.scoreSum += r.Score
	}

	rows := make([]UserReportRow, 0, len(users))
	for _, u := range users {
		row := UserReportRow{
			UserID:     u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Department: u.Department,
			Active:     u.Active,
			Medals:     len(u.Medals),
			Title:      u.Title,
		}
		if a := totals[u.ID]; a != nil {
			row.CompletedTrainings = a.completed
			row.TotalPoints = a.points
			row.ExamAttempts = a.attempts
			if a.attempts > 0 {
				row.AverageScore = math.Round(a.scoreSum/float64(a.attempts)*100) / 100
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *ReportService) Individual(userID string) (*IndividualReport, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	records, err := s.historicoRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	results, err := s.resultadoRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	report := &IndividualReport{User: user.PublicProfile(), ExamResults: results}
	summary := UserReportRow{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Department:   user.Department,
		Active:       user.Active,
		Medals:       len(user.Medals),
		Title:        user.Title,
		ExamAttempts: len(results),
	}
	var sum float64
	for _, r := range results {
		sum += r.Score
	}
	if len(results) > 0 {
		summary.AverageScore = math.Round(sum/float64(len(results))*100) / 100
	}
	for _, rec := range records {
		if !rec.Completed {
			continue
		}
		summary.CompletedTrainings++
		summary.TotalPoints += rec.PointsEarned
		title := "Treinamento não encontrado"
		if t, findErr := s.trainingRepo.FindByID(rec.TrainingID); findErr == nil {
			title = t.Title
		}
		report.Completions = append(report.Completions, RecentCompletion{
			TrainingID:    rec.TrainingID,
			TrainingTitle: title,
			CompletedAt:   rec.CompletedAt,
			QuizScore:     rec.QuizScore,
			PointsEarned:  rec.PointsEarned,
		})
	}
	report.Summary = summary
	return report, nil
}

// ExportGeneralXLSX gera a planilha do relatório geral para download.
func (s *ReportService) ExportGeneralXLSX() (*bytes.Buffer, string, error) {
	rows, err := s.GeneralReport("")
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Relatório Geral"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Nome", "E-mail", "Departamento", "Ativo", "Treinamentos Concluídos", "Pontos", "Tentativas de Simulado", "Pontuação Média", "Medalhas", "Título"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []interface{}{
			row.Name, row.Email, row.Department, activeLabel(row.Active),
			row.CompletedTrainings, row.TotalPoints, row.ExamAttempts,
			row.AverageScore, row.Medals, row.Title,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("relatorio_geral_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func activeLabel(active bool) string {
	if active {
		return "Sim"
	}
	return "Não"
}
