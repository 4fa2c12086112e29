package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petsitter/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupMeRouter(service *Service, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "user")
	})
	NewHandler(service).RegisterProtectedRoutes(&r.RouterGroup)
	return r
}

func getMe(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/me", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_GetMe(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(101)).Return(&domain.User{
		ID:    101,
		Name:  "Standard User",
		Email: "user@pet.com",
		Role:  domain.RoleUser,
	}, nil)

	w := getMe(setupMeRouter(NewService(repo, new(MockJWT)), 101))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "user@pet.com", body.Data.User.Email)
}

func TestHandler_GetMe_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	w := getMe(setupMeRouter(NewService(repo, new(MockJWT)), 404))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_GetMe_StorageErrorIsNotNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(101)).Return(nil, errors.New("connection reset"))

	w := getMe(setupMeRouter(NewService(repo, new(MockJWT)), 101))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "FETCH_FAILED")
}
