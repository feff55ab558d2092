package service

import (
	"math"
	"sort"
	"time"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
)

// RankingEntry é uma linha do ranking de desempenho em simulados.
type RankingEntry struct {
	Position     int     `json:"posicao"`
	UserID       string  `json:"usuarioId"`
	UserName     string  `json:"usuarioNome"`
	Department   string  `json:"departamento"`
	AverageScore float64 `json:"pontuacaoMedia"`
	AttemptCount int     `json:"tentativas"`
	Title        string  `json:"titulo"`
	Medals       int     `json:"medalhas"`
}

// RankingPeriod delimita o recorte temporal do ranking.
type RankingPeriod string

const (
	RankingAll       RankingPeriod = "geral"
	RankingMonthly   RankingPeriod = "mensal"
	RankingQuarterly RankingPeriod = "trimestral"
)

// BuildRanking calcula o ranking a partir dos funcionários ativos e dos
// resultados do período. Usuários sem tentativa no período ficam de fora.
// Ordena por média decrescente e desempata por nome crescente. Função pura.
func BuildRanking(users []model.User, results []model.ResultadoSimulado) []RankingEntry {
	byUser := make(map[string]model.User, len(users))
	for _, u := range users {
		byUser[u.ID] = u
	}
	type acc struct {
		sum   float64
		count int
	}
	totals := make(map[string]*acc)
	for _, r := range results {
		if _, ok := byUser[r.UserID]; !ok {
			continue
		}
		a := totals[r.UserID]
		if a == nil {
			a = &acc{}
			totals[r.UserID] = a
		}
		a.sum += r.Score
		a.count++
	}

	entries := make([]RankingEntry, 0, len(totals))
	for id, a := range totals {
		u := byUser[id]
		avg := math.Round(a.sum/float64(a.count)*100) / 100
		entries = append(entries, RankingEntry{
			UserID:       id,
			UserName:     u.Name,
			Department:   u.Department,
			AverageScore: avg,
			AttemptCount: a.count,
			Title:        u.Title,
			Medals:       len(u.Medals),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AverageScore != entries[j].AverageScore {
			return entries[i].AverageScore > entries[j].AverageScore
		}
		return entries[i].UserName < entries[j].UserName
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// ViewerPosition localiza a posição do usuário no ranking.
// Retorna 0 quando o usuário não pontuou no período.
func ViewerPosition(entries []RankingEntry, userID string) int {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Position
		}
	}
	return 0
}

// RankingService monta o ranking consultando usuários e resultados.
type RankingService struct {
	userRepo      *repository.UserRepository
	resultadoRepo *repository.ResultadoRepository
}

func NewRankingService(userRepo *repository.UserRepository, resultadoRepo *repository.ResultadoRepository) *RankingService {
	return &RankingService{userRepo: userRepo, resultadoRepo: resultadoRepo}
}

// Ranking devolve o ranking do período. Um departamento vazio inclui todos.
func (s *RankingService) Ranking(period RankingPeriod, department string) ([]RankingEntry, error) {
	users, err := s.userRepo.FindActiveEmployees(department)
	if err != nil {
		return nil, err
	}
	var since *time.Time
	now := time.Now()
	switch period {
	case RankingMonthly:
		start := now.AddDate(0, -1, 0)
		since = &start
	case RankingQuarterly:
		start := now.AddDate(0, -3, 0)
		since = &start
	}
	results, err := s.resultadoRepo.FindSince(since)
	if err != nil {
		return nil, err
	}
	return BuildRanking(users, results), nil
}
