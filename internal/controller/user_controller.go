package controller

import (
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService  *service.UserService
	achievements *service.AchievementService
}

func NewUserController(userService *service.UserService, achievements *service.AchievementService) *UserController {
	return &UserController{userService: userService, achievements: achievements}
}

type createUserRequest struct {
	Name       string         `json:"nome" binding:"required"`
	Email      string         `json:"email" binding:"required,email"`
	Password   string         `json:"senha" binding:"required,min=6"`
	Department string         `json:"departamento"`
	Role       model.UserRole `json:"tipo"`
}

type updateUserRequest struct {
	Name       string         `json:"nome" binding:"required"`
	Email      string         `json:"email" binding:"required,email"`
	Department string         `json:"departamento"`
	Role       model.UserRole `json:"tipo"`
	Active     *bool          `json:"ativo"`
}

type setActiveRequest struct {
	Active *bool `json:"ativo" binding:"required"`
}

// List godoc
// @Summary Todos os usuários cadastrados
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /admin/usuarios [get]
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.userService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	profiles := make([]model.User, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}
	util.Success(c, profiles)
}

// Get godoc
// @Summary Detalhe de um usuário
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} util.Response{data=model.User}
// @Router /admin/usuarios/{id} [get]
func (ctl *UserController) Get(c *gin.Context) {
	user, err := ctl.userService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, user.PublicProfile())
}

// Create godoc
// @Summary Cadastra um usuário
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createUserRequest true "Usuário"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "E-mail já cadastrado"
// @Router /admin/usuarios [post]
func (ctl *UserController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Dados do usuário inválidos")
		return
	}
	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       req.Role,
	}
	if err := ctl.userService.Create(user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, user.PublicProfile())
}

// Update godoc
// @Summary Atualiza um usuário
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param body body updateUserRequest true "Usuário"
// @Success 200 {object} util.Response{data=model.User}
// @Router /admin/usuarios/{id} [put]
func (ctl *UserController) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Dados do usuário inválidos")
		return
	}
	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       req.Role,
	}
	user.ID = c.Param("id")
	user.Active = req.Active == nil || *req.Active
	if err := ctl.userService.Update(user); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, user.PublicProfile())
}

// SetActive godoc
// @Summary Ativa ou desativa uma conta
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param body body setActiveRequest true "Estado desejado"
// @Success 200 {object} util.Response
// @Router /admin/usuarios/{id}/ativo [put]
func (ctl *UserController) SetActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		util.BadRequest(c, "Informe o campo ativo")
		return
	}
	if err := ctl.userService.SetActive(c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"ativo": *req.Active})
}

// ResetProgress godoc
// @Summary Zera histórico, resultados e conquistas do usuário
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} util.Response
// @Router /admin/usuarios/{id}/zerar [post]
func (ctl *UserController) ResetProgress(c *gin.Context) {
	if err := ctl.userService.ResetProgress(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Progresso do usuário zerado"})
}

// RefreshAchievements godoc
// @Summary Reavalia medalhas e título do usuário
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} util.Response{data=service.AchievementOutcome}
// @Router /admin/usuarios/{id}/conquistas [post]
func (ctl *UserController) RefreshAchievements(c *gin.Context) {
	user, err := ctl.userService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	outcome, err := ctl.achievements.Refresh(user)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, outcome)
}

// Delete godoc
// @Summary Remove um usuário e todos os seus registros
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} util.Response
// @Router /admin/usuarios/{id} [delete]
func (ctl *UserController) Delete(c *gin.Context) {
	if err := ctl.userService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Usuário removido"})
}
