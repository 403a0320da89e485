package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	config "github.com/ledosportsacademy/club-manager-go/config"
	utils "github.com/ledosportsacademy/club-manager-go/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		Credentials: config.AdminCredentials{
			Email:    "admin@club.test",
			Password: "s3cret",
		},
	}
}

func postJSON(r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", Login(cfg))
	return r
}

func TestLogin_Success(t *testing.T) {
	cfg := testConfig()
	r := loginRouter(cfg)

	w := postJSON(r, "/api/admin/login", `{"email":"admin@club.test","password":"s3cret"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: got status %d want 200, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := decodeBody(w, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	claims, err := utils.ParseToken(resp.Token, []byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("issued token should parse: %v", err)
	}
	if claims.Email != "admin@club.test" || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r := loginRouter(testConfig())

	w := postJSON(r, "/api/admin/login", `{"email":"admin@club.test","password":"nope"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got status %d want 401", w.Code)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	r := loginRouter(testConfig())

	w := postJSON(r, "/api/admin/login", `{"email":"admin@club.test"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: got status %d want 400", w.Code)
	}
}
