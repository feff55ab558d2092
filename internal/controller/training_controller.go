package controller

import (
	"errors"
	"io"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	trainingService *service.TrainingService
	userRepo        *repository.UserRepository
}

func NewTrainingController(trainingService *service.TrainingService, userRepo *repository.UserRepository) *TrainingController {
	return &TrainingController{trainingService: trainingService, userRepo: userRepo}
}

type completeRequest struct {
	Answers        map[int]int `json:"respostas"`
	WatchedSeconds int         `json:"segundosAssistidos"`
}

type watchProgressRequest struct {
	WatchedSeconds int `json:"segundosAssistidos" binding:"required,min=1"`
}

// Catalog godoc
// @Summary Catálogo de treinamentos do departamento do usuário
// @Tags treinamentos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Training}
// @Router /treinamentos [get]
func (ctl *TrainingController) Catalog(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	trainings, err := ctl.trainingService.Catalog(c.Request.Context(), user.Department)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, trainings)
}

// Get godoc
// @Summary Detalhe de um treinamento
// @Tags treinamentos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 404 {object} util.Response
// @Router /treinamentos/{id} [get]
func (ctl *TrainingController) Get(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	t, err := ctl.trainingService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user.Role != model.Admin && !t.AvailableTo(user.Department) {
		util.NotFound(c)
		return
	}
	util.Success(c, t)
}

// Complete godoc
// @Summary Conclui um treinamento, corrigindo o questionário se houver
// @Tags treinamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Param body body completeRequest false "Respostas e tempo assistido"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Router /treinamentos/{id}/concluir [post]
func (ctl *TrainingController) Complete(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	// Corpo opcional: treinamento sem questionário conclui com POST vazio.
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(c, "Corpo da requisição inválido")
		return
	}
	result, err := ctl.trainingService.Complete(user, c.Param("id"), req.Answers, req.WatchedSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, result)
}

// Retake godoc
// @Summary Zera a conclusão para refazer o treinamento
// @Tags treinamentos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Success 200 {object} util.Response
// @Router /treinamentos/{id}/refazer [post]
func (ctl *TrainingController) Retake(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	if err := ctl.trainingService.Retake(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Treinamento liberado para refazer"})
}

// WatchProgress godoc
// @Summary Salva o avanço de vídeo sem concluir
// @Tags treinamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Param body body watchProgressRequest true "Segundos assistidos"
// @Success 200 {object} util.Response
// @Router /treinamentos/{id}/progresso [post]
func (ctl *TrainingController) WatchProgress(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	var req watchProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Informe os segundos assistidos")
		return
	}
	if err := ctl.trainingService.Progress(user, c.Param("id"), req.WatchedSeconds); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, nil)
}

// AdminList godoc
// @Summary Lista paginada de todos os treinamentos
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /admin/treinamentos [get]
func (ctl *TrainingController) AdminList(c *gin.Context) {
	page, limit := pageParams(c, util.PageSizeDefault)
	trainings, total, err := ctl.trainingService.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: trainings, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Cadastra um treinamento
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Training true "Treinamento"
// @Success 201 {object} util.Response{data=model.Training}
// @Router /admin/treinamentos [post]
func (ctl *TrainingController) Create(c *gin.Context) {
	var t model.Training
	if err := c.ShouldBindJSON(&t); err != nil {
		util.BadRequest(c, "Dados do treinamento inválidos")
		return
	}
	if err := ctl.trainingService.Create(&t); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, t)
}

// Update godoc
// @Summary Atualiza um treinamento
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Param body body model.Training true "Treinamento"
// @Success 200 {object} util.Response{data=model.Training}
// @Router /admin/treinamentos/{id} [put]
func (ctl *TrainingController) Update(c *gin.Context) {
	var t model.Training
	if err := c.ShouldBindJSON(&t); err != nil {
		util.BadRequest(c, "Dados do treinamento inválidos")
		return
	}
	t.ID = c.Param("id")
	if err := ctl.trainingService.Update(&t); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, t)
}

// Delete godoc
// @Summary Remove um treinamento
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Success 200 {object} util.Response
// @Router /admin/treinamentos/{id} [delete]
func (ctl *TrainingController) Delete(c *gin.Context) {
	if err := ctl.trainingService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Treinamento removido"})
}

// Completions godoc
// @Summary Quantidade de conclusões de um treinamento
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treinamento"
// @Success 200 {object} util.Response
// @Router /admin/treinamentos/{id}/conclusoes [get]
func (ctl *TrainingController) Completions(c *gin.Context) {
	count, err := ctl.trainingService.CompletionCount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"conclusoes": count})
}
