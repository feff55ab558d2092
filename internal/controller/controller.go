package controller

import (
	"errors"
	"net/http"
	"strconv"

	"treinahub_backend/internal/model"
	"treinahub_backend/internal/repository"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pageParams lê ?page= e ?limit= com os padrões do acervo.
func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

// respondError traduz os erros de domínio para o status HTTP adequado.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrTrainingNotFound),
		errors.Is(err, util.ErrSimuladoNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(c, err.Error())
	case errors.Is(err, util.ErrAttemptNotAllowed),
		errors.Is(err, util.ErrContentInactive):
		util.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrQuestionnaireEmpty),
		errors.Is(err, util.ErrQuestionWithoutKey),
		errors.Is(err, util.ErrRetryCountInvalid),
		errors.Is(err, util.ErrPdiEmployeeRequired),
		errors.Is(err, util.ErrImportNotConfirmed),
		errors.Is(err, util.ErrDepartmentInUse),
		errors.Is(err, util.ErrBadgeNameTaken),
		errors.Is(err, util.ErrUnknownCollection),
		errors.Is(err, util.ErrTrilhaWithoutSteps),
		errors.Is(err, util.ErrAnswersRequired),
		errors.Is(err, util.ErrInvalidQuestionSet):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}

// currentUser carrega o usuário autenticado a partir das claims do token.
func currentUser(c *gin.Context, userRepo *repository.UserRepository) (*model.User, bool) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c, "Não autenticado")
		return nil, false
	}
	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if !user.Active {
		util.Forbidden(c, "Conta desativada")
		return nil, false
	}
	return user, true
}
