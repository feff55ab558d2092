package controller

import (
	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	storageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{storageService: storageService}
}

// UploadVideo godoc
// @Summary Envia o vídeo de um treinamento
// @Description Grava o arquivo e devolve a URL e a duração em segundos, lida por ffprobe.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param arquivo formData file true "Arquivo de vídeo"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Router /admin/uploads/videos [post]
func (ctl *UploadController) UploadVideo(c *gin.Context) {
	file, err := c.FormFile("arquivo")
	if err != nil {
		util.BadRequest(c, "Envie o vídeo no campo arquivo")
		return
	}
	result, err := ctl.storageService.SaveVideo(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, result)
}

// UploadAttachment godoc
// @Summary Envia um material de apoio
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param arquivo formData file true "Arquivo do material"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Router /admin/uploads/materiais [post]
func (ctl *UploadController) UploadAttachment(c *gin.Context) {
	file, err := c.FormFile("arquivo")
	if err != nil {
		util.BadRequest(c, "Envie o material no campo arquivo")
		return
	}
	result, err := ctl.storageService.SaveAttachment(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, result)
}
