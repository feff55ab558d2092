package controller

import (
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	progressService *service.ProgressService
	rankingService  *service.RankingService
	userRepo        *repository.UserRepository
}

func NewProgressController(progressService *service.ProgressService, rankingService *service.RankingService, userRepo *repository.UserRepository) *ProgressController {
	return &ProgressController{progressService: progressService, rankingService: rankingService, userRepo: userRepo}
}

// Summary godoc
// @Summary Painel de progresso do usuário autenticado
// @Tags progresso
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressSummary}
// @Router /progresso [get]
func (ctl *ProgressController) Summary(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	summary, err := ctl.progressService.Summary(user)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, summary)
}

// Certificates godoc
// @Summary Comprovantes de conclusão do usuário autenticado
// @Tags progresso
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.RecentCompletion}
// @Router /certificados [get]
func (ctl *ProgressController) Certificates(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	certs, err := ctl.progressService.Certificates(user)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, certs)
}

// Trilhas godoc
// @Summary Trilhas do departamento com estado de cada etapa
// @Tags progresso
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.TrilhaProgress}
// @Router /trilhas [get]
func (ctl *ProgressController) Trilhas(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	trilhas, err := ctl.progressService.Trilhas(user)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, trilhas)
}

// Trilha godoc
// @Summary Uma trilha específica com estado das etapas
// @Tags progresso
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da trilha"
// @Success 200 {object} util.Response{data=service.TrilhaProgress}
// @Router /trilhas/{id} [get]
func (ctl *ProgressController) Trilha(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	trilha, err := ctl.progressService.Trilha(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, trilha)
}

// Ranking godoc
// @Summary Ranking de desempenho em simulados
// @Tags progresso
// @Produce json
// @Security BearerAuth
// @Param periodo query string false "geral, mensal ou trimestral" default(geral)
// @Param departamento query string false "Filtra por departamento"
// @Success 200 {object} util.Response
// @Router /ranking [get]
func (ctl *ProgressController) Ranking(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	period := service.RankingPeriod(c.DefaultQuery("periodo", string(service.RankingAll)))
	switch period {
	case service.RankingAll, service.RankingMonthly, service.RankingQuarterly:
	default:
		util.BadRequest(c, "Período inválido: use geral, mensal ou trimestral")
		return
	}
	ranking, err := ctl.rankingService.Ranking(period, c.Query("departamento"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{
		"ranking":      ranking,
		"minhaPosicao": service.ViewerPosition(ranking, user.ID),
	})
}
