package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mayurihegde/evently-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ListPublic godoc
// @Summary Browse published events
// @Param category query int false "category id"
// @Param subcategory query int false "subcategory id"
// @Param venue query int false "venue id"
// @Param tag query string false "tag"
// @Param date_range query string false "today|week|weekend|month|custom"
// @Router /events [get]
func (h *Handler) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	f := Filters{
		CategoryID:    uintQuery(c, "category"),
		SubcategoryID: uintQuery(c, "subcategory"),
		VenueID:       uintQuery(c, "venue"),
		Tag:           c.Query("tag"),
		DateRange:     c.Query("date_range"),
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
		OnlineOnly:    c.Query("online") == "true",
		Search:        c.Query("search"),
		Limit:         limit,
		Offset:        offset,
	}

	rows, err := h.Service.ListPublic(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	detail, err := h.Service.Detail(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// EditForm returns the denormalized form projection an edit session loads.
func (h *Handler) EditForm(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	form, err := h.Service.EditForm(uint(id), org)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *Handler) Create(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, fieldErrs, err := h.Service.Create(&req, org, userID, middleware.GetIPFromContext(c))
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	e, fieldErrs, err := h.Service.Update(uint(id), &req, org, userID, middleware.GetIPFromContext(c))
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) Cancel(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}

	if err := h.Service.Cancel(uint(id), org, userID, middleware.GetIPFromContext(c)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event cancelled"})
}

func (h *Handler) ListMine(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	events, err := h.Service.ListByOrganization(org, limit, offset, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) Stats(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}

	stats, err := h.Service.Stats(org)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "event belongs to another organisation"})
	case errors.Is(err, ErrUpdateFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func uintQuery(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Query(key), 10, 32)
	return uint(v)
}
