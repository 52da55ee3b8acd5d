package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Nirnayjain168/Gym-Management/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service dependency.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportMembersCSV streams the member roster as a CSV download. When an
// archive bucket is configured the object key is exposed in a response
// header so the caller can retrieve the archived copy later.
func (h *ReportHandler) ExportMembersCSV(c *gin.Context) {
	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	report, err := h.reportService.ExportMembersCSV(c.Request.Context(), adminID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error exporting members: %v", err))
		return
	}

	if report.ArchiveKey != "" {
		c.Header("X-Archive-Key", report.ArchiveKey)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", report.Content)
}

// GetArchivedReportURL returns a temporary download link for a previously
// archived export, identified by the key handed out at export time.
func (h *ReportHandler) GetArchivedReportURL(c *gin.Context) {
	adminID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify admin from token.")
		return
	}

	objectKey := c.Query("key")
	if objectKey == "" {
		abortWithError(c, http.StatusBadRequest, "Missing 'key' query parameter.")
		return
	}

	url, err := h.reportService.ArchivedReportURL(c.Request.Context(), adminID, objectKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArchiveDisabled):
			abortWithError(c, http.StatusNotFound, "Report archive is not configured.")
		case errors.Is(err, service.ErrArchiveKeyInvalid):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Error generating download link: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
