package controller

import (
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
	userRepo    *repository.UserRepository
}

func NewAuthController(authService *service.AuthService, userRepo *repository.UserRepository) *AuthController {
	return &AuthController{authService: authService, userRepo: userRepo}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type changePasswordRequest struct {
	Current string `json:"senhaAtual" binding:"required"`
	Next    string `json:"novaSenha" binding:"required,min=6"`
}

// Login godoc
// @Summary Autenticação por e-mail e senha
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credenciais"
// @Success 200 {object} util.Response{data=service.LoginResult}
// @Failure 401 {object} util.Response
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Informe e-mail e senha válidos")
		return
	}
	result, err := ctl.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, result)
}

// Profile godoc
// @Summary Perfil do usuário autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /me [get]
func (ctl *AuthController) Profile(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	util.Success(c, user.PublicProfile())
}

// ChangePassword godoc
// @Summary Troca a senha do usuário autenticado
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body changePasswordRequest true "Senhas"
// @Success 200 {object} util.Response
// @Router /me/senha [put]
func (ctl *AuthController) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c, ctl.userRepo)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, "Informe a senha atual e a nova senha (mínimo 6 caracteres)")
		return
	}
	if err := ctl.authService.ChangePassword(user.ID, req.Current, req.Next); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"mensagem": "Senha alterada com sucesso"})
}
