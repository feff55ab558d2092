package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PdiController struct {
	pdiService *service.PdiService
	userRepo   *repository.UserRepository
}

func NewPdiController(pdiService *service.PdiService, userRepo *repository.UserRepository) *PdiController {
	return &PdiController{pdiService: pdiService, userRepo: userRepo}
}

type pdiStatusRequest struct {
	Status model.PdiStatus `json:"status" binding:"required,oneof=em_andamento concluido"`
}

// Mine godoc
// @Summary Planos de desenvolvimento do usuário autenticado
// @Tags pdi
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Pdi}
// @Router /pdis [get]
func (ctl *PdiController) Mine(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	pdis, err := ctl.pdiService.ListByUser(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, pdis)
}

// SetStatus godoc
// @Summary Marca um plano como concluído ou reaberto
// @Tags pdi
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do plano"
// @Param body body pdiStatusRequest true "Novo status"
// @Success 200 {object} util.Response{data=model.Pdi}
// @Router /pdis/{id}/status [put]
func (ctl *PdiController) SetStatus(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	var req pdiStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Status inválido: use em_andamento ou concluido")
		return
	}
	pdi, err := ctl.pdiService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	// Funcionário só mexe no próprio plano.
	if user.Role != model.Admin && pdi.UserID != user.ID {
		util.Forbidden(c, "Este plano pertence a outro funcionário")
		return
	}
	updated, err := ctl.pdiService.SetStatus(pdi.ID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, updated)
}

// AdminList godoc
// @Summary Todos os planos de desenvolvimento
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param usuario query string false "Filtra pelo funcionário"
// @Success 200 {object} util.Response{data=[]model.Pdi}
// @Router /admin/pdis [get]
func (ctl *PdiController) AdminList(c *gin.Context) {
	if userID := c.Query("usuario"); userID != "" {
		pdis, err := ctl.pdiService.ListByUser(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		util.Success(c, pdis)
		return
	}
	pdis, err := ctl.pdiService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, pdis)
}

// Create godoc
// @Summary Cadastra um plano de desenvolvimento
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Pdi true "Plano"
// @Success 201 {object} util.Response{data=model.Pdi}
// @Router /admin/pdis [post]
func (ctl *PdiController) Create(c *gin.Context) {
	var pdi model.Pdi
	if err := c.ShouldBindJSON(&pdi); err != nil {
		util.BadRequest(c, "Dados do plano inválidos")
		return
	}
	if err := ctl.pdiService.Create(&pdi); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, pdi)
}

// Update godoc
// @Summary Atualiza um plano de desenvolvimento
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do plano"
// @Param body body model.Pdi true "Plano"
// @Success 200 {object} util.Response{data=model.Pdi}
// @Router /admin/pdis/{id} [put]
func (ctl *PdiController) Update(c *gin.Context) {
	var pdi model.Pdi
	if err := c.ShouldBindJSON(&pdi); err != nil {
		util.BadRequest(c, "Dados do plano inválidos")
		return
	}
	pdi.ID = c.Param("id")
	if err := ctl.pdiService.Update(&pdi); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, pdi)
}

// Delete godoc
// @Summary Remove um plano de desenvolvimento
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do plano"
// @Success 200 {object} util.Response
// @Router /admin/pdis/{id} [delete]
func (ctl *PdiController) Delete(c *gin.Context) {
	if err := ctl.pdiService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Plano removido"})
}
