package service

import (
	"testing"
	"time"

	"treinahub_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func employee(id, name string) model.User {
	u := model.User{Name: name, Role: model.Funcionario, Active: true}
	u.ID = id
	return u
}

func resultFor(userID string, score float64) model.ResultadoSimulado {
	return model.ResultadoSimulado{UserID: userID, Score: score, CompletedAt: time.Now()}
}

func TestBuildRankingOrdering(t *testing.T) {
	users := []model.User{
		employee("u1", "Ana"),
		employee("u2", "Bruno"),
		employee("u3", "Carla"),
	}
	results := []model.ResultadoSimulado{
		resultFor("u1", 80),
		resultFor("u2", 90),
		resultFor("u3", 70),
		resultFor("u3", 90),
	}

	ranking := BuildRanking(users, results)
	assert.Len(t, ranking, 3)
	assert.Equal(t, "Bruno", ranking[0].UserName)
	assert.Equal(t, float64(90), ranking[0].AverageScore)
	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, "Carla", ranking[1].UserName)
	assert.Equal(t, float64(80), ranking[1].AverageScore)
	assert.Equal(t, "Ana", ranking[2].UserName)
	assert.Equal(t, 3, ranking[2].Position)
}

func TestBuildRankingTieBreakByName(t *testing.T) {
	users := []model.User{
		employee("u1", "Zeca"),
		employee("u2", "Ana"),
	}
	results := []model.ResultadoSimulado{
		resultFor("u1", 85),
		resultFor("u2", 85),
	}
	ranking := BuildRanking(users, results)
	assert.Equal(t, "Ana", ranking[0].UserName)
	assert.Equal(t, "Zeca", ranking[1].UserName)
}

func TestBuildRankingExcludesUsersWithoutAttempts(t *testing.T) {
	users := []model.User{
		employee("u1", "Ana"),
		employee("u2", "Bruno"),
	}
	results := []model.ResultadoSimulado{resultFor("u1", 60)}
	ranking := BuildRanking(users, results)
	assert.Len(t, ranking, 1)
	assert.Equal(t, "Ana", ranking[0].UserName)
}

func TestBuildRankingIgnoresResultsOfUnknownUsers(t *testing.T) {
	// Resultados de contas desativadas ou removidas não entram na lista.
	users := []model.User{employee("u1", "Ana")}
	results := []model.ResultadoSimulado{
		resultFor("u1", 60),
		resultFor("desativado", 100),
	}
	ranking := BuildRanking(users, results)
	assert.Len(t, ranking, 1)
	assert.Equal(t, "Ana", ranking[0].UserName)
}

func TestViewerPosition(t *testing.T) {
	users := []model.User{
		employee("u1", "Ana"),
		employee("u2", "Bruno"),
	}
	results := []model.ResultadoSimulado{
		resultFor("u1", 60),
		resultFor("u2", 90),
	}
	ranking := BuildRanking(users, results)
	assert.Equal(t, 2, ViewerPosition(ranking, "u1"))
	assert.Equal(t, 1, ViewerPosition(ranking, "u2"))
	assert.Equal(t, 0, ViewerPosition(ranking, "sem-tentativa"))
}

func TestBuildRankingAverageRounding(t *testing.T) {
	users := []model.User{employee("u1", "Ana")}
	results := []model.ResultadoSimulado{
		resultFor("u1", 100),
		resultFor("u1", 67),
		resultFor("u1", 33),
	}
	ranking := BuildRanking(users, results)
	// (100+67+33)/3 = 66.666... arredonda para 66.67.
	assert.Equal(t, 66.67, ranking[0].AverageScore)
	assert.Equal(t, 3, ranking[0].AttemptCount)
}
