package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaxonomyController struct {
	taxonomyService *service.TaxonomyService
}

func NewTaxonomyController(taxonomyService *service.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

// Categories godoc
// @Summary Lista as categorias de conteúdo
// @Tags taxonomia
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /categorias [get]
func (ctl *TaxonomyController) Categories(c *gin.Context) {
	categories, err := ctl.taxonomyService.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, categories)
}

// CreateCategory godoc
// @Summary Cadastra uma categoria
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Category true "Categoria"
// @Success 201 {object} util.Response{data=model.Category}
// @Router /admin/categorias [post]
func (ctl *TaxonomyController) CreateCategory(c *gin.Context) {
	var cat model.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		util.BadRequest(c, "Dados da categoria inválidos")
		return
	}
	if err := ctl.taxonomyService.CreateCategory(&cat); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, cat)
}

// UpdateCategory godoc
// @Summary Atualiza uma categoria
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Param body body model.Category true "Categoria"
// @Success 200 {object} util.Response{data=model.Category}
// @Router /admin/categorias/{id} [put]
func (ctl *TaxonomyController) UpdateCategory(c *gin.Context) {
	var cat model.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		util.BadRequest(c, "Dados da categoria inválidos")
		return
	}
	cat.ID = c.Param("id")
	if err := ctl.taxonomyService.UpdateCategory(&cat); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, cat)
}

// DeleteCategory godoc
// @Summary Remove uma categoria
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Success 200 {object} util.Response
// @Router /admin/categorias/{id} [delete]
func (ctl *TaxonomyController) DeleteCategory(c *gin.Context) {
	if err := ctl.taxonomyService.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Categoria removida"})
}

// Departments godoc
// @Summary Lista os departamentos
// @Tags taxonomia
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Department}
// @Router /departamentos [get]
func (ctl *TaxonomyController) Departments(c *gin.Context) {
	departments, err := ctl.taxonomyService.Departments()
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, departments)
}

// CreateDepartment godoc
// @Summary Cadastra um departamento
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Department true "Departamento"
// @Success 201 {object} util.Response{data=model.Department}
// @Router /admin/departamentos [post]
func (ctl *TaxonomyController) CreateDepartment(c *gin.Context) {
	var dep model.Department
	if err := c.ShouldBindJSON(&dep); err != nil {
		util.BadRequest(c, "Dados do departamento inválidos")
		return
	}
	if err := ctl.taxonomyService.CreateDepartment(&dep); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, dep)
}

// UpdateDepartment godoc
// @Summary Atualiza um departamento
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do departamento"
// @Param body body model.Department true "Departamento"
// @Success 200 {object} util.Response{data=model.Department}
// @Router /admin/departamentos/{id} [put]
func (ctl *TaxonomyController) UpdateDepartment(c *gin.Context) {
	var dep model.Department
	if err := c.ShouldBindJSON(&dep); err != nil {
		util.BadRequest(c, "Dados do departamento inválidos")
		return
	}
	dep.ID = c.Param("id")
	if err := ctl.taxonomyService.UpdateDepartment(&dep); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, dep)
}

// DeleteDepartment godoc
// @Summary Remove um departamento sem vínculos
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do departamento"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Departamento em uso"
// @Router /admin/departamentos/{id} [delete]
func (ctl *TaxonomyController) DeleteDepartment(c *gin.Context) {
	if err := ctl.taxonomyService.DeleteDepartment(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Departamento removido"})
}
