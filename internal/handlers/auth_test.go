package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/constants"
	"github.com/stackit/stackit-api/internal/database"
	"github.com/stackit/stackit-api/internal/dto"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/repository"
	"github.com/stackit/stackit-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Tag{},
		&models.QuestionTag{},
		&models.Vote{},
		&models.Notification{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func newAuthTestRouter(env authTestEnv) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/signup", env.handler.Signup)
	r.POST("/api/auth/login", env.handler.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthTestRouter(env)

	payload := map[string]string{
		"email":    "newuser@example.com",
		"username": "newuser",
		"name":     "New User",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, payload["username"], response.Username)
	require.Equal(t, models.RoleUser, response.Role)
}

func TestAuthHandler_Signup_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthTestRouter(env)

	_, err := env.authService.Signup(services.SignupInput{
		Email:    "first@example.com",
		Username: "taken",
		Password: "supersecret",
	})
	require.NoError(t, err)

	payload := map[string]string{
		"email":    "second@example.com",
		"username": "taken",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthTestRouter(env)

	payload := map[string]string{
		"email":    "user@example.com",
		"username": "someuser",
		"password": "short",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthTestRouter(env)

	_, err := env.authService.Signup(services.SignupInput{
		Email:    "existing@example.com",
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	payload := map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)
	require.NotEmpty(t, w.Header().Get("Set-Cookie"))
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := newAuthTestRouter(env)

	_, err := env.authService.Signup(services.SignupInput{
		Email:    "existing@example.com",
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	payload := map[string]string{
		"email":    "existing@example.com",
		"password": "wrongpassword",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
