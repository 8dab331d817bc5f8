package flight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"travel/pkg/logger"
	"travel/pkg/session"

	"github.com/gin-gonic/gin"
)

// DraftResetter discards a session's in-progress booking; a new search
// invalidates whatever the user had picked before.
type DraftResetter interface {
	Clear(ctx context.Context, sessionID string) error
}

type FlightHandler struct {
	service *Service
	drafts  DraftResetter
	logger  logger.Client
}

func NewFlightHandler(s *Service, drafts DraftResetter, logger logger.Client) *FlightHandler {
	return &FlightHandler{
		service: s,
		drafts:  drafts,
		logger:  logger,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.POST("/v1/flights/returns", h.ReturnOptionsHandler)
	router.DELETE("/v1/flights/cache", h.InvalidateCacheHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flights across suppliers
// @Description  Queries IATI and Sabre, merges both result sets and returns facets plus the return-flight index
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	if sid := session.ID(c); sid != "" && h.drafts != nil {
		if err := h.drafts.Clear(c.Request.Context(), sid); err != nil {
			h.logger.Warn("failed to reset booking draft", logger.Field{Key: "err", Value: err})
		}
	}

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterFlightsHandler godoc
// @Summary      Filter existing flight results
// @Description  Apply departure and return selections (airline, stops, provider, price, flight number)
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Filter Criteria"
// @Success      200 {object} FilterResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.FilterFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ReturnOptionsHandler godoc
// @Summary      Return flights for an outbound offer
// @Description  Looks up the return offers paired with provider_key:package_key and derives their facets
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body ReturnsRequest true "Outbound selection"
// @Success      200 {object} ReturnsResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/returns [post]
func (h *FlightHandler) ReturnOptionsHandler(c *gin.Context) {
	var req ReturnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.ReturnOptions(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// InvalidateCacheHandler godoc
// @Summary      Drop cached results for a search
// @Tags         flights
// @Accept       json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      204
// @Router       /v1/flights/cache [delete]
func (h *FlightHandler) InvalidateCacheHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := h.service.InvalidateCache(c.Request.Context(), req); err != nil {
		sendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
