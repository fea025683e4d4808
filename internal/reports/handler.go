package reports

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mayurihegde/evently-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ExportEvents streams the organisation's events as csv, excel, or pdf.
func (h *Handler) ExportEvents(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", FormatCSV)

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = parsed
	}

	data, filename, contentType, err := h.Service.ExportEvents(org, format, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
