package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/febdev/feb_shop/internal/models"
	"github.com/febdev/feb_shop/internal/mykafka"
)

var testSecret = []byte("test_secret")

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.User{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newProductHandler(t *testing.T) (*ProductHandler, *gorm.DB) {
	t.Helper()
	db := initTestDB(t)
	return &ProductHandler{DB: db, Producer: mykafka.NewProducer(nil)}, db
}

func newAuthHandler(t *testing.T) (*AuthHandler, *gorm.DB) {
	t.Helper()
	db := initTestDB(t)
	return &AuthHandler{DB: db, JWTSecret: testSecret, Producer: mykafka.NewProducer(nil)}, db
}

func jsonContext(t *testing.T, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return c, rec
}
