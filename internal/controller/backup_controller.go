package controller

import (
	"strconv"

	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	backupService *service.BackupService
}

func NewBackupController(backupService *service.BackupService) *BackupController {
	return &BackupController{backupService: backupService}
}

// Export godoc
// @Summary Exporta todo o acervo em JSON
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Snapshot}
// @Router /admin/backup/exportar [get]
func (ctl *BackupController) Export(c *gin.Context) {
	snap, err := ctl.backupService.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="treinahub_backup.json"`)
	util.Success(c, snap)
}

// Import godoc
// @Summary Restaura um snapshot, SUBSTITUINDO os dados atuais
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirmar query bool true "Confirmação explícita da substituição"
// @Param body body service.Snapshot true "Snapshot exportado anteriormente"
// @Success 200 {object} util.Response{data=service.ImportReport}
// @Failure 400 {object} util.Response "Sem confirmação ou coleção desconhecida"
// @Router /admin/backup/importar [post]
func (ctl *BackupController) Import(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirmar"))
	var snap service.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		util.BadRequest(c, "Arquivo de backup inválido")
		return
	}
	report, err := ctl.backupService.Import(&snap, confirmed)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, report)
}

// ImportUsersCSV godoc
// @Summary Importa usuários em lote via planilha CSV
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param arquivo formData file true "CSV com cabeçalho nome,email,senha,departamento,tipo"
// @Success 200 {object} util.Response{data=service.CSVImportReport}
// @Router /admin/usuarios/importar [post]
func (ctl *BackupController) ImportUsersCSV(c *gin.Context) {
	file, err := c.FormFile("arquivo")
	if err != nil {
		util.BadRequest(c, "Envie o arquivo CSV no campo arquivo")
		return
	}
	src, err := file.Open()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	defer src.Close()
	report, err := ctl.backupService.ImportUsersCSV(src)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, report)
}
