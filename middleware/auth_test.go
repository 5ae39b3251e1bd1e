package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/desafiofire/api/config"
	"github.com/desafiofire/api/models"
	"github.com/desafiofire/api/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.SetForTesting(config.AppConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	})
	os.Exit(m.Run())
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestAuthRequired(t *testing.T) {
	r := gin.New()
	r.GET("/private", AuthRequired(), okHandler)

	// no header
	w := get(r, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed header
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	w = get(r, "/private", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token passes and exposes identity
	token, err := utils.GenerateToken(7, "aluno@example.com", models.RoleMember, time.Hour)
	require.NoError(t, err)
	w = get(r, "/private", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// expired token is rejected
	expired, err := utils.GenerateToken(7, "aluno@example.com", models.RoleMember, -time.Minute)
	require.NoError(t, err)
	w = get(r, "/private", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBlacklistedToken(t *testing.T) {
	r := gin.New()
	r.GET("/private", AuthRequired(), okHandler)

	token, err := utils.GenerateToken(7, "aluno@example.com", models.RoleMember, time.Hour)
	require.NoError(t, err)
	utils.BlacklistToken(token, time.Now().Add(time.Hour))

	w := get(r, "/private", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActiveRequired(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	user := models.User{Email: "aluno@example.com", PasswordHash: "x", Role: models.RoleMember, Status: models.StatusActive}
	require.NoError(t, db.Create(&user).Error)

	r := gin.New()
	r.GET("/member", AuthRequired(), ActiveRequired(db), okHandler)

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, time.Hour)
	require.NoError(t, err)

	w := get(r, "/member", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// a blocked account keeps its token but loses access immediately
	require.NoError(t, db.Model(&user).Update("status", models.StatusBlocked).Error)
	w = get(r, "/member", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// token for a deleted account
	orphan, err := utils.GenerateToken(999, "ghost@example.com", models.RoleMember, time.Hour)
	require.NoError(t, err)
	w = get(r, "/member", orphan)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AuthRequired(), AdminRequired(), okHandler)

	memberToken, err := utils.GenerateToken(1, "aluno@example.com", models.RoleMember, time.Hour)
	require.NoError(t, err)
	w := get(r, "/admin", memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := utils.GenerateToken(2, "admin@example.com", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	w = get(r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
