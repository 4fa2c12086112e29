package catalog

import (
	"net/http"
	"strconv"

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
	rg.GET("/sitters", h.ListSitters)
	rg.GET("/sitters/:id", h.GetSitter)
}

func (h *Handler) ListSitters(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	sitters, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		if err == ErrInvalidService {
			response.Error(c, http.StatusBadRequest, "INVALID_SERVICE", "Unknown service kind")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load sitters")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sitters": sitters})
}

func (h *Handler) GetSitter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid sitter ID")
		return
	}

	sitter, err := h.service.Find(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Sitter not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load sitter")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sitter": sitter})
}
