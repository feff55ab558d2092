package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	badgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{badgeService: badgeService}
}

// List godoc
// @Summary Definições de medalhas configuráveis
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.BadgeDefinition}
// @Router /admin/medalhas [get]
func (ctl *BadgeController) List(c *gin.Context) {
	defs, err := ctl.badgeService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, defs)
}

// Create godoc
// @Summary Cria uma definição de medalha
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.BadgeDefinition true "Definição"
// @Success 201 {object} util.Response{data=model.BadgeDefinition}
// @Failure 400 {object} util.Response "Nome já em uso ou regra inválida"
// @Router /admin/medalhas [post]
func (ctl *BadgeController) Create(c *gin.Context) {
	var def model.BadgeDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		util.BadRequest(c, "Dados da medalha inválidos")
		return
	}
	if err := ctl.badgeService.Create(&def); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, def)
}

// Update godoc
// @Summary Atualiza uma definição de medalha
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da definição"
// @Param body body model.BadgeDefinition true "Definição"
// @Success 200 {object} util.Response{data=model.BadgeDefinition}
// @Router /admin/medalhas/{id} [put]
func (ctl *BadgeController) Update(c *gin.Context) {
	var def model.BadgeDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		util.BadRequest(c, "Dados da medalha inválidos")
		return
	}
	def.ID = c.Param("id")
	if err := ctl.badgeService.Update(&def); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, def)
}

// Delete godoc
// @Summary Remove uma definição de medalha
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da definição"
// @Success 200 {object} util.Response
// @Router /admin/medalhas/{id} [delete]
func (ctl *BadgeController) Delete(c *gin.Context) {
	if err := ctl.badgeService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Medalha removida"})
}
