package booking

import (
	"errors"
	"fmt"
	"net/http"
	"travel/pkg/session"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service *Service
}

func NewBookingHandler(s *Service) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) RegisterRoutes(router gin.IRouter) {
	g := router.Group("/v1/booking")
	g.POST("/draft", h.StartDraftHandler)
	g.GET("/draft", h.GetDraftHandler)
	g.POST("/draft/submit", h.SubmitDraftHandler)
	g.DELETE("/draft", h.ClearDraftHandler)
	g.GET("/draft/confirmation.pdf", h.ConfirmationHandler)
}

// StartDraftHandler godoc
// @Summary      Start a booking draft
// @Description  Stores the chosen flight or hotel offer in the browsing session, replacing any earlier draft
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        request body StartRequest true "Chosen offer"
// @Success      201 {object} Draft
// @Failure      400 {object} map[string]string
// @Router       /v1/booking/draft [post]
func (h *BookingHandler) StartDraftHandler(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request format: %v", err)})
		return
	}

	draft, err := h.service.Start(c.Request.Context(), session.ID(c), req)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetDraftHandler godoc
// @Summary      Current booking draft
// @Tags         booking
// @Produce      json
// @Success      200 {object} Draft
// @Failure      404 {object} map[string]string
// @Router       /v1/booking/draft [get]
func (h *BookingHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.service.Get(c.Request.Context(), session.ID(c))
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitDraftHandler godoc
// @Summary      Submit guest and contact details
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequest true "Guest form"
// @Success      200 {object} Draft
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /v1/booking/draft/submit [post]
func (h *BookingHandler) SubmitDraftHandler(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request format: %v", err)})
		return
	}

	draft, err := h.service.Submit(c.Request.Context(), session.ID(c), req)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ClearDraftHandler godoc
// @Summary      Discard the booking draft
// @Tags         booking
// @Success      204
// @Router       /v1/booking/draft [delete]
func (h *BookingHandler) ClearDraftHandler(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), session.ID(c)); err != nil {
		sendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmationHandler godoc
// @Summary      Download the booking confirmation
// @Tags         booking
// @Produce      application/pdf
// @Success      200 {file} file
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /v1/booking/draft/confirmation.pdf [get]
func (h *BookingHandler) ConfirmationHandler(c *gin.Context) {
	doc, err := h.service.Confirmation(c.Request.Context(), session.ID(c))
	if err != nil {
		sendError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="confirmation.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func sendError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrDraftNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrAlreadySubmitted), errors.Is(err, ErrNotSubmitted):
		status = http.StatusConflict
	case errors.Is(err, ErrInvalidDraft):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
