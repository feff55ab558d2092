package controller

import (
	"fmt"
	"net/http"

	"treinahub_backend/internal/service"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	reportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Dashboard godoc
// @Summary Números gerais do painel administrativo
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /admin/dashboard [get]
func (ctl *ReportController) Dashboard(c *gin.Context) {
	stats, err := ctl.reportService.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, stats)
}

// General godoc
// @Summary Relatório de engajamento, uma linha por usuário
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param treinamento query string false "Restringe conclusões a um treinamento"
// @Success 200 {object} util.Response{data=[]service.UserReportRow}
// @Router /admin/relatorios/geral [get]
func (ctl *ReportController) General(c *gin.Context) {
	rows, err := ctl.reportService.GeneralReport(c.Query("treinamento"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, rows)
}

// Individual godoc
// @Summary Relatório detalhado de um funcionário
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} util.Response{data=service.IndividualReport}
// @Router /admin/relatorios/usuarios/{id} [get]
func (ctl *ReportController) Individual(c *gin.Context) {
	report, err := ctl.reportService.Individual(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, report)
}

// ExportXLSX godoc
// @Summary Baixa o relatório geral em planilha XLSX
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /admin/relatorios/geral/xlsx [get]
func (ctl *ReportController) ExportXLSX(c *gin.Context) {
	buf, filename, err := ctl.reportService.ExportGeneralXLSX()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
