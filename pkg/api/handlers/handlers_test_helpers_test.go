package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/summitfg/summit-api/pkg/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Lead{},
		&models.RoundRobinConfig{},
		&models.CareerQuizResult{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.Inquiry{},
		&models.User{},
	))
	return db
}

func newJSONRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func newContext(t *testing.T, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	t.Helper()
	return echo.New().NewContext(req, rec)
}
