package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	articleService *service.ArticleService
}

func NewArticleController(articleService *service.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

// List godoc
// @Summary Artigos publicados
// @Tags artigos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /artigos [get]
func (ctl *ArticleController) List(c *gin.Context) {
	page, limit := pageParams(c, util.PageSizeLarge)
	articles, total, err := ctl.articleService.ListPublished(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: articles, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Detalhe de um artigo
// @Tags artigos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do artigo"
// @Success 200 {object} util.Response{data=model.Article}
// @Router /artigos/{id} [get]
func (ctl *ArticleController) Get(c *gin.Context) {
	article, err := ctl.articleService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, article)
}

// AdminList godoc
// @Summary Todos os artigos, inclusive rascunhos
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /admin/artigos [get]
func (ctl *ArticleController) AdminList(c *gin.Context) {
	page, limit := pageParams(c, util.PageSizeLarge)
	articles, total, err := ctl.articleService.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: articles, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Publica um artigo
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Article true "Artigo"
// @Success 201 {object} util.Response{data=model.Article}
// @Router /admin/artigos [post]
func (ctl *ArticleController) Create(c *gin.Context) {
	var article model.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		util.BadRequest(c, "Dados do artigo inválidos")
		return
	}
	if err := ctl.articleService.Create(&article); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, article)
}

// Update godoc
// @Summary Atualiza um artigo
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do artigo"
// @Param body body model.Article true "Artigo"
// @Success 200 {object} util.Response{data=model.Article}
// @Router /admin/artigos/{id} [put]
func (ctl *ArticleController) Update(c *gin.Context) {
	var article model.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		util.BadRequest(c, "Dados do artigo inválidos")
		return
	}
	article.ID = c.Param("id")
	if err := ctl.articleService.Update(&article); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, article)
}

// Delete godoc
// @Summary Remove um artigo
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do artigo"
// @Success 200 {object} util.Response
// @Router /admin/artigos/{id} [delete]
func (ctl *ArticleController) Delete(c *gin.Context) {
	if err := ctl.articleService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Artigo removido"})
}
