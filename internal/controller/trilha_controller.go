package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrilhaController struct {
	trilhaService *service.TrilhaService
}

func NewTrilhaController(trilhaService *service.TrilhaService) *TrilhaController {
	return &TrilhaController{trilhaService: trilhaService}
}

// AdminList godoc
// @Summary Todas as trilhas de aprendizado
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Trilha}
// @Router /admin/trilhas [get]
func (ctl *TrilhaController) AdminList(c *gin.Context) {
	trilhas, err := ctl.trilhaService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, trilhas)
}

// Create godoc
// @Summary Cadastra uma trilha de aprendizado
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Trilha true "Trilha"
// @Success 201 {object} util.Response{data=model.Trilha}
// @Router /admin/trilhas [post]
func (ctl *TrilhaController) Create(c *gin.Context) {
	var t model.Trilha
	if err := c.ShouldBindJSON(&t); err != nil {
		util.BadRequest(c, "Dados da trilha inválidos")
		return
	}
	if err := ctl.trilhaService.Create(&t); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, t)
}

// Update godoc
// @Summary Atualiza uma trilha de aprendizado
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da trilha"
// @Param body body model.Trilha true "Trilha"
// @Success 200 {object} util.Response{data=model.Trilha}
// @Router /admin/trilhas/{id} [put]
func (ctl *TrilhaController) Update(c *gin.Context) {
	var t model.Trilha
	if err := c.ShouldBindJSON(&t); err != nil {
		util.BadRequest(c, "Dados da trilha inválidos")
		return
	}
	t.ID = c.Param("id")
	if err := ctl.trilhaService.Update(&t); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, t)
}

// Delete godoc
// @Summary Remove uma trilha de aprendizado
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da trilha"
// @Success 200 {object} util.Response
// @Router /admin/trilhas/{id} [delete]
func (ctl *TrilhaController) Delete(c *gin.Context) {
	if err := ctl.trilhaService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Trilha removida"})
}
