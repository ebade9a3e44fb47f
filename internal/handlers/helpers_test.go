package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"site-tracker/internal/config"
	"site-tracker/internal/database"
	"site-tracker/internal/handlers"
	"site-tracker/internal/models"
	"site-tracker/internal/server"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var dbSeq atomic.Int64

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// the router loads templates and static dirs relative to the repo root
	if err := os.Chdir("../.."); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// setup opens a fresh in-memory database and builds the real router.
func setup(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	if err := database.Open("sqlite", dsn); err != nil {
		t.Fatalf("open test db: %v", err)
	}

	handlers.UploadDir = t.TempDir()

	cfg := &config.Config{
		DBDriver:      "sqlite",
		DBDSN:         dsn,
		ServerPort:    "0",
		SessionSecret: "test-secret",
		UploadDir:     handlers.UploadDir,
	}
	return server.NewRouter(cfg)
}

func createUser(t *testing.T, name, password string, role models.UserRole) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := models.User{Name: name, PasswordHash: string(hash), Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func login(t *testing.T, r *gin.Engine, name, password string) []*http.Cookie {
	t.Helper()

	w := postForm(r, "/login", url.Values{"name": {name}, "password": {password}}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login of %s: status %d", name, w.Code)
	}
	return w.Result().Cookies()
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postMultipart(t *testing.T, r *gin.Engine, path string, fields map[string]string, fileField, fileName, fileContent string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(fileContent)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func redirectTarget(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got status %d: %s", w.Code, w.Body.String())
	}
	return w.Header().Get("Location")
}
