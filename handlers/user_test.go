package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserService struct {
	users  []models.User
	admins map[string]bool
}

func (s *stubUserService) GetAllUsers(_ context.Context) ([]models.User, error) {
	return s.users, nil
}

func (s *stubUserService) CreateUser(_ context.Context, req models.UserCreateRequest) (*models.User, error) {
	return &models.User{ID: "u1", Email: req.Email, Name: req.Name}, nil
}

func (s *stubUserService) PromoteToAdmin(_ context.Context, id string) error {
	return nil
}

func (s *stubUserService) IsAdmin(_ context.Context, email string) (bool, error) {
	return s.admins[email], nil
}

func newUserRouter(svc *stubUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/users", h.GetAllUsers)
	r.POST("/users", h.CreateUser)
	r.GET("/users/admin/:email", h.CheckAdmin)
	return r
}

func TestCheckAdminHandler(t *testing.T) {
	svc := &stubUserService{admins: map[string]bool{"boss@b.com": true}}
	r := newUserRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/users/admin/boss@b.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["isAdmin"])

	// Unknown accounts are simply not admins.
	w = doJSON(t, r, http.MethodGet, "/users/admin/nobody@b.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["isAdmin"])
}

func TestCreateUserHandlerOmitsPassword(t *testing.T) {
	r := newUserRouter(&stubUserService{})

	w := doJSON(t, r, http.MethodPost, "/users", map[string]interface{}{
		"email":    "a@b.com",
		"name":     "A",
		"password": "hunter2",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "password_hash")
}
