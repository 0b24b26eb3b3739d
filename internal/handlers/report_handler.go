package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princessangelsalon/salon-api/internal/httperr"
	"github.com/princessangelsalon/salon-api/internal/httpresp"
	"github.com/princessangelsalon/salon-api/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	generator *report.Generator
}

func NewReportHandler(generator *report.Generator) *ReportHandler {
	return &ReportHandler{generator: generator}
}

// Export streams a workbook for the requested report type as a download.
func (h *ReportHandler) Export(c *gin.Context) {
	data, filename, err := h.generator.Generate(c.Request.Context(), c.Param("type"))
	if err != nil {
		if httperr.IsCode(err, "invalid_report_type") {
			httpresp.BadRequest(c, "Invalid report type")
			return
		}
		httpresp.Internal(c, "Error generating report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
