package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qr-inventory/dto"
	"qr-inventory/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.QRCode{}, &models.Item{}, &models.CodeItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return setupRouter(db), db
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, email, password string) {
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	return response.Token
}

func doImport(r *gin.Engine, token, csvData string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("file", "items.csv")
	_, _ = part.Write([]byte(csvData))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLivenessRoute(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestRegisterLoginAndLookup(t *testing.T) {
	r, _ := setupTestRouter(t)

	register(t, r, "admin@example.com", "password123")
	token := login(t, r, "admin@example.com", "password123")

	w := doJSON(r, http.MethodGet, "/api/qrcodes/ABC-123", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.LookupResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ABC-123", response.Code)
	assert.Len(t, response.Items, 0)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r, _ := setupTestRouter(t)

	register(t, r, "user@example.com", "password123")
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{"email": "user@example.com", "password": "password123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	r, _ := setupTestRouter(t)

	register(t, r, "user@example.com", "password123")

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "user@example.com", "password": "wrongpassword"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLookupRequiresToken(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/qrcodes/ABC-123", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/qrcodes/ABC-123", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLookupInvalidCodeFormat(t *testing.T) {
	r, _ := setupTestRouter(t)

	register(t, r, "user@example.com", "password123")
	token := login(t, r, "user@example.com", "password123")

	w := doJSON(r, http.MethodGet, "/api/qrcodes/a", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportRequiresAdmin(t *testing.T) {
	r, _ := setupTestRouter(t)

	// First user is the admin, second one is a plain user.
	register(t, r, "admin@example.com", "password123")
	register(t, r, "user@example.com", "password123")
	userToken := login(t, r, "user@example.com", "password123")

	w := doImport(r, userToken, "code,name,sku,qty\nQR-001,Widget,W-1,1\n")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doImport(r, "", "code,name,sku,qty\nQR-001,Widget,W-1,1\n")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminImportAndLookupFlow(t *testing.T) {
	r, db := setupTestRouter(t)

	register(t, r, "admin@example.com", "password123")
	token := login(t, r, "admin@example.com", "password123")

	csvData := "code,name,sku,qty\n" +
		"QR-X1,Widget,W-1,2\n" +
		"QR-X1,Gadget,G-1,1\n" +
		",NoCode,X-1,1\n"

	w := doImport(r, token, csvData)
	assert.Equal(t, http.StatusOK, w.Code)

	var summary dto.ImportSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.Ok)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	var codeCount int64
	assert.NoError(t, db.Model(&models.QRCode{}).Count(&codeCount).Error)
	assert.Equal(t, int64(1), codeCount)

	w = doJSON(r, http.MethodGet, "/api/qrcodes/qr-x1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.LookupResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "QR-X1", response.Code)
	assert.Len(t, response.Items, 2)
	assert.Contains(t, response.Items, models.LinkedItem{Name: "Widget", Sku: "W-1", Qty: 2})
	assert.Contains(t, response.Items, models.LinkedItem{Name: "Gadget", Sku: "G-1", Qty: 1})
}

func TestImportWithoutFileIsBadRequest(t *testing.T) {
	r, _ := setupTestRouter(t)

	register(t, r, "admin@example.com", "password123")
	token := login(t, r, "admin@example.com", "password123")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("other", "value")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "File"))
}
