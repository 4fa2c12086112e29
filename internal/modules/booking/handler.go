package booking

import (
	"net/http"
	"strconv"

	"petsitter/internal/domain"
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
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/quote", h.Quote)
	rg.GET("/bookings/:id", h.GetBooking)
}

func actorFromContext(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64("user_id"),
		Role:   c.GetString("role"),
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required booking details")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		switch err {
		case ErrNotAuthenticated:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in as a user to book a service")
		case ErrSitterUnavailable:
			response.Error(c, http.StatusConflict, "SITTER_UNAVAILABLE", "Sitter is not available for booking")
		case ErrServiceNotOffered:
			response.Error(c, http.StatusBadRequest, "SERVICE_NOT_OFFERED", "Sitter does not offer this service")
		case ErrInvalidDuration:
			response.Error(c, http.StatusBadRequest, "INVALID_DURATION", "Duration must be at least 1 hour")
		case ErrPastDate:
			response.Error(c, http.StatusBadRequest, "PAST_DATE", "Booking date cannot be in the past")
		case ErrInvalidPaymentVerification:
			response.Error(c, http.StatusBadRequest, "INVALID_PAYMENT_NUMBER", "Please enter a valid mobile number (09XX XXX XXXX)")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required booking details")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	kind, err := domain.ParseServiceKind(req.ServiceType)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "SERVICE_NOT_OFFERED", "Unknown service kind")
		return
	}

	total, err := h.service.Quote(c.Request.Context(), req.SitterID, kind, req.Duration)
	if err != nil {
		switch err {
		case ErrInvalidDuration:
			response.Error(c, http.StatusBadRequest, "INVALID_DURATION", "Duration must be at least 1 hour")
		case ErrSitterUnavailable:
			response.Error(c, http.StatusNotFound, "SITTER_UNAVAILABLE", "Sitter is not available")
		case ErrServiceNotOffered:
			response.Error(c, http.StatusBadRequest, "SERVICE_NOT_OFFERED", "Sitter does not offer this service")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		}
		return
	}

	response.Success(c, http.StatusOK, QuoteResponse{
		SitterID:    req.SitterID,
		ServiceType: req.ServiceType,
		Duration:    req.Duration,
		Rate:        total / float64(req.Duration),
		TotalPrice:  total,
	})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
