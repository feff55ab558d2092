package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SimuladoController struct {
	simuladoService *service.SimuladoService
	userRepo        *repository.UserRepository
}

func NewSimuladoController(simuladoService *service.SimuladoService, userRepo *repository.UserRepository) *SimuladoController {
	return &SimuladoController{simuladoService: simuladoService, userRepo: userRepo}
}

type attemptRequest struct {
	Answers map[int]int `json:"respostas" binding:"required"`
}

// List godoc
// @Summary Simulados disponíveis para funcionários
// @Tags simulados
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /simulados [get]
func (ctl *SimuladoController) List(c *gin.Context) {
	page, limit := pageParams(c, util.PageSizeLarge)
	simulados, total, err := ctl.simuladoService.ListActive(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	// O gabarito não sai para o cliente do funcionário.
	for i := range simulados {
		simulados[i].Questions = stripAnswerKeys(simulados[i].Questions)
	}
	util.Success(c, util.PageResponse{List: simulados, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Detalhe de um simulado, sem gabarito
// @Tags simulados
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do simulado"
// @Success 200 {object} util.Response{data=model.Simulado}
// @Router /simulados/{id} [get]
func (ctl *SimuladoController) Get(c *gin.Context) {
	sim, err := ctl.simuladoService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	if user.Role != model.Admin {
		if !sim.Active {
			util.NotFound(c)
			return
		}
		sim.Questions = stripAnswerKeys(sim.Questions)
	}
	util.Success(c, sim)
}

// Eligibility godoc
// @Summary Consulta se o usuário pode tentar o simulado agora
// @Tags simulados
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do simulado"
// @Success 200 {object} util.Response{data=service.Eligibility}
// @Router /simulados/{id}/elegibilidade [get]
func (ctl *SimuladoController) Eligibility(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	verdict, err := ctl.simuladoService.Eligibility(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, verdict)
}

// Attempt godoc
// @Summary Submete uma tentativa de simulado
// @Tags simulados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do simulado"
// @Param body body attemptRequest true "Respostas por índice de questão"
// @Success 200 {object} util.Response{data=service.AttemptResult}
// @Failure 403 {object} util.Response "Tentativa fora da política"
// @Router /simulados/{id}/tentativas [post]
func (ctl *SimuladoController) Attempt(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	var req attemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Envie as respostas do simulado")
		return
	}
	result, err := ctl.simuladoService.SubmitAttempt(user, c.Param("id"), req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, result)
}

// History godoc
// @Summary Tentativas anteriores do usuário no simulado
// @Tags simulados
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do simulado"
// @Success 200 {object} util.Response{data=[]model.ResultadoSimulado}
// @Router /simulados/{id}/tentativas [get]
func (ctl *SimuladoController) History(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	results, err := ctl.simuladoService.History(user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, results)
}

// AdminList godoc
// @Summary Lista paginada de todos os simulados
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /admin/simulados [get]
func (ctl *SimuladoController) AdminList(c *gin.Context) {
	page, limit := pageParams(c, util.PageSizeLarge)
	simulados, total, err := ctl.simuladoService.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: simulados, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Cadastra um simulado
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Simulado true "Simulado"
// @Success 201 {object} util.Response{data=model.Simulado}
// @Router /admin/simulados [post]
func (ctl *SimuladoController) Create(c *gin.Context) {
	var sim model.Simulado
	if err := c.ShouldBindJSON(&sim); err != nil {
		util.BadRequest(c, "Dados do simulado inválidos")
		return
	}
	if err := ctl.simuladoService.Create(&sim); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, sim)
}

// Update godoc
// @Summary Atualiza um simulado
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do simulado"
// @Param body body model.Simulado true "Simulado"
// @Success 200 {object} util.Response{data=model.Simulado}
// @Router /admin/simulados/{id} [put]
func (ctl *SimuladoController) Update(c *gin.Context) {
	var sim model.Simulado
	if err := c.ShouldBindJSON(&sim); err != nil {
		util.BadRequest(c, "Dados do simulado inválidos")
		return
	}
	sim.ID = c.Param("id")
	if err := ctl.simuladoService.Update(&sim); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, sim)
}

// Delete godoc
// @Summary Remove um simulado
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do simulado"
// @Success 200 {object} util.Response
// @Router /admin/simulados/{id} [delete]
func (ctl *SimuladoController) Delete(c *gin.Context) {
	if err := ctl.simuladoService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Simulado removido"})
}

// stripAnswerKeys remove o gabarito das questões antes de enviar ao cliente.
func stripAnswerKeys(questions model.QuestionList) model.QuestionList {
	out := make(model.QuestionList, len(questions))
	for i, q := range questions {
		q.CorrectOption = nil
		out[i] = q
	}
	return out
}
