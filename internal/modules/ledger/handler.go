package ledger

import (
	"net/http"

	"petsitter/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/my-history", h.MyHistory)
	rg.GET("/users/me/stats", h.MyStats)
}

func (h *Handler) MyHistory(c *gin.Context) {
	var opts FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	userID := c.GetInt64("user_id")
	bookings, err := h.service.UserHistory(c.Request.Context(), userID, opts)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load booking history")
		return
	}

	rows := make([]HistoryRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, HistoryRow{Booking: b, PaymentLabel: b.PaymentMethod.Label()})
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) MyStats(c *gin.Context) {
	userID := c.GetInt64("user_id")

	stats, err := h.service.StatsFor(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
