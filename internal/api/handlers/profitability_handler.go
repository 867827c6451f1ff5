package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maryrojas/rentabilidad-go/internal/domain"
	"github.com/maryrojas/rentabilidad-go/internal/service"
)

type ProfitabilityHandler struct {
	service         *service.ProfitabilityService
	defaultQuantity float64
	minQuantity     float64
}

func NewProfitabilityHandler(service *service.ProfitabilityService, defaultQuantity, minQuantity float64) *ProfitabilityHandler {
	return &ProfitabilityHandler{
		service:         service,
		defaultQuantity: defaultQuantity,
		minQuantity:     minQuantity,
	}
}

// GetProductTypes returns the enumerated, deduplicated, normalized product
// types the dashboard selector offers.
func (h *ProfitabilityHandler) GetProductTypes(c *gin.Context) {
	types, err := h.service.ProductTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	if types == nil {
		types = make([]string, 0)
	}

	c.JSON(http.StatusOK, gin.H{"product_types": types})
}

// GetRanking returns the top channels (and their top cities) by mean EBITDA.
// An empty result is a 200 with no_data set, not an error.
func (h *ProfitabilityHandler) GetRanking(c *gin.Context) {
	productType := strings.TrimSpace(c.Query("product_type"))
	if productType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_type is required"})
		return
	}

	match, ok := parseMatchMode(c.DefaultQuery("match", string(domain.MatchExact)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match must be one of: substring, exact"})
		return
	}

	channels, err := h.service.Ranking(productType, match)
	if err != nil {
		respondError(c, err)
		return
	}
	if channels == nil {
		channels = make([]domain.ChannelRanking, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"product_type": productType,
		"channels":     channels,
		"no_data":      len(channels) == 0,
	})
}

// GetSimulation returns suggested pricing per (channel, city) for a product
// type and quantity. The quantity defaults to the configured dashboard value
// when omitted; the engine still validates it.
func (h *ProfitabilityHandler) GetSimulation(c *gin.Context) {
	productType := strings.TrimSpace(c.Query("product_type"))
	if productType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_type is required"})
		return
	}

	match, ok := parseMatchMode(c.DefaultQuery("match", string(domain.MatchExact)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match must be one of: substring, exact"})
		return
	}

	quantity := h.defaultQuantity
	if raw := strings.TrimSpace(c.Query("quantity")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be numeric"})
			return
		}
		quantity = parsed
	}
	if quantity < h.minQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("quantity must be at least %g", h.minQuantity)})
		return
	}

	rows, err := h.service.Simulate(productType, match, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = make([]domain.SimulationRow, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"product_type": productType,
		"quantity":     quantity,
		"rows":         rows,
		"no_data":      len(rows) == 0,
	})
}

// GetStatus reports dataset load counters, including silently coerced
// monetary cells.
func (h *ProfitabilityHandler) GetStatus(c *gin.Context) {
	status, err := h.service.DatasetStatus()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func parseMatchMode(raw string) (domain.MatchMode, bool) {
	switch domain.MatchMode(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.MatchSubstring:
		return domain.MatchSubstring, true
	case domain.MatchExact:
		return domain.MatchExact, true
	default:
		return "", false
	}
}

// respondError maps pipeline errors onto HTTP statuses: a dataset that cannot
// be loaded makes data endpoints unavailable without taking the process down;
// malformed input stays a client error.
func respondError(c *gin.Context, err error) {
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable", "details": err.Error()})
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
}
