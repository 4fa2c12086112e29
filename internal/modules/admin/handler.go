package admin

import (
	"net/http"
	"strconv"

	"petsitter/internal/modules/booking"
	"petsitter/internal/modules/catalog"
	"petsitter/internal/modules/ledger"
	"petsitter/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler wires the admin panel endpoints. Aggregates come from the
// ledger service and booking status changes go through the booking
// service so admin reuses the same transition rules.
type Handler struct {
	service  *Service
	ledger   *ledger.Service
	bookings *booking.Service
}

func NewHandler(service *Service, ledgerSvc *ledger.Service, bookingSvc *booking.Service) *Handler {
	return &Handler{service: service, ledger: ledgerSvc, bookings: bookingSvc}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.Stats)
	admin.GET("/services/popular", h.PopularServices)
	admin.GET("/bookings", h.AllBookings)
	admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	admin.GET("/users", h.ListUsers)
	admin.PATCH("/users/:id/status", h.UpdateUserStatus)
	admin.PATCH("/users/:id/role", h.UpdateUserRole)
	admin.DELETE("/users/:id", h.DeleteUser)
	admin.GET("/sitters", h.ListSitters)
	admin.PATCH("/sitters/:id/active", h.UpdateSitterActive)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.ledger.GlobalStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// PopularServices returns the most-booked services. The default of five
// matches the dashboard widget.
func (h *Handler) PopularServices(c *gin.Context) {
	topN := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a positive integer")
			return
		}
		topN = n
	}

	services, err := h.ledger.PopularServices(c.Request.Context(), topN)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load popular services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"popularServices": services})
}

func (h *Handler) AllBookings(c *gin.Context) {
	var opts ledger.FilterOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	bookings, err := h.ledger.AllBookings(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	actor := booking.Actor{UserID: c.GetInt64("user_id"), Role: c.GetString("role")}
	b, err := h.bookings.UpdateStatus(c.Request.Context(), id, req.Status, actor)
	if err != nil {
		switch err {
		case booking.ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		case booking.ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case booking.ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status can no longer change")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be active or inactive")
		return
	}

	user, err := h.service.SetUserStatus(c.Request.Context(), c.GetInt64("user_id"), id, req.Status)
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "role must be user or admin")
		return
	}

	user, err := h.service.SetUserRole(c.Request.Context(), c.GetInt64("user_id"), id, req.Role)
	if err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *Handler) ListSitters(c *gin.Context) {
	sitters, err := h.service.ListSitters(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load sitters")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sitters": sitters})
}

func (h *Handler) UpdateSitterActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sitter ID")
		return
	}

	var req UpdateSitterActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "active is required")
		return
	}

	if err := h.service.SetSitterActive(c.Request.Context(), id, *req.Active); err != nil {
		if err == catalog.ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Sitter not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update sitter")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "active": *req.Active})
}

func (h *Handler) writeUserError(c *gin.Context, err error) {
	switch err {
	case ErrSelfChange:
		response.Error(c, http.StatusConflict, "SELF_CHANGE", "You cannot change your own account")
	case ErrAdminDelete:
		response.Error(c, http.StatusConflict, "ADMIN_DELETE", "Admin accounts cannot be deleted")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case ErrUnknownRole, ErrUnknownStatus:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown value")
	default:
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update user")
	}
}
