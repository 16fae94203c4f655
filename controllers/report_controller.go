package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-ops/export"
	"hotel-ops/services"
	"hotel-ops/utils"
)

// ReportController serves the revenue dashboard and the export downloads.
type ReportController struct {
	ReportSvc *services.ReportService
	StaySvc   *services.StayService
}

func NewReportController(reports *services.ReportService, stays *services.StayService) *ReportController {
	return &ReportController{ReportSvc: reports, StaySvc: stays}
}

func (rc *ReportController) Revenue(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}
	rep, err := rc.ReportSvc.Revenue(c.Request.Context(), hotelID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rep)
}

func exportFormat(c *gin.Context) (string, bool) {
	switch f := c.DefaultQuery("format", "csv"); f {
	case "csv", "json":
		return f, true
	default:
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("unknown format %q", f))
		return "", false
	}
}

func sendCSV(c *gin.Context, name string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportStays handles GET /hotel/export/stays?format=csv|json&period=
func (rc *ReportController) ExportStays(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	period, ok := periodParam(c)
	if !ok {
		return
	}
	stays, err := rc.StaySvc.List(c.Request.Context(), hotelID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	if format == "json" {
		utils.JSONSuccess(c, http.StatusOK, stays)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteStaysCSV(&buf, stays); err != nil {
		respondError(c, err)
		return
	}
	sendCSV(c, "stays", &buf)
}

// ExportTransactions handles GET /hotel/export/transactions?period=&format=
func (rc *ReportController) ExportTransactions(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}
	period, ok := periodParam(c)
	if !ok {
		return
	}
	rep, err := rc.ReportSvc.Revenue(c.Request.Context(), hotelID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	if format == "json" {
		utils.JSONSuccess(c, http.StatusOK, rep.Timeline)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteTransactionsCSV(&buf, rep.Timeline); err != nil {
		respondError(c, err)
		return
	}
	sendCSV(c, "transactions", &buf)
}
