package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	config "github.com/ledosportsacademy/club-manager-go/config"
	middleware "github.com/ledosportsacademy/club-manager-go/middleware"
	utils "github.com/ledosportsacademy/club-manager-go/utils"
)

// The store is never reached in these cases: the auth chain and input
// validation reject the request first.
func donationsRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/donations", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), CreateDonation(cfg))
	return r
}

func TestCreateDonation_NoToken(t *testing.T) {
	r := donationsRouter(testConfig())

	w := postJSON(r, "/api/donations", `{"donorName":"Ravi","items":"cash","amount":100}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got status %d want 401", w.Code)
	}
}

func TestCreateDonation_NonAdminToken(t *testing.T) {
	cfg := testConfig()
	r := donationsRouter(cfg)

	tok, err := utils.GenerateToken("viewer@club.test", false, []byte(cfg.JWTSecret), utils.TokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := postJSON(r, "/api/donations", `{"donorName":"Ravi","items":"cash","amount":100}`, tok)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin token: got status %d want 403", w.Code)
	}
}

func TestCreateDonation_MissingDonorName(t *testing.T) {
	cfg := testConfig()
	r := donationsRouter(cfg)

	tok, err := utils.GenerateToken("admin@club.test", true, []byte(cfg.JWTSecret), utils.TokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := postJSON(r, "/api/donations", `{"items":"jerseys"}`, tok)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing donorName: got status %d want 400", w.Code)
	}
}

func TestCreateDonation_NegativeAmount(t *testing.T) {
	cfg := testConfig()
	r := donationsRouter(cfg)

	tok, err := utils.GenerateToken("admin@club.test", true, []byte(cfg.JWTSecret), utils.TokenTTL)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := postJSON(r, "/api/donations", `{"donorName":"Ravi","items":"cash","amount":-5}`, tok)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative amount: got status %d want 400", w.Code)
	}
}
