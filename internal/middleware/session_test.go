package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeValidator resolves one canned token into one canned principal
type fakeValidator struct {
	token     string
	principal *domain.Principal
}

func (v *fakeValidator) Validate(tokenString string) (*domain.Principal, error) {
	if tokenString == v.token {
		return v.principal, nil
	}
	return nil, errors.New("session token is invalid or expired")
}

const testCookieName = "eb_session"

func testPrincipal(role domain.Role, tenantID string) *domain.Principal {
	return &domain.Principal{
		AdminID:  "admin-1",
		Email:    "owner@glowspa.test",
		Role:     role,
		TenantID: tenantID,
	}
}

func setupSessionRouter(principal *domain.Principal, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	config := &SessionConfig{
		Validator:  &fakeValidator{token: "good-token", principal: principal},
		CookieName: testCookieName,
	}

	handlers := []gin.HandlerFunc{SessionRequired(config)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		current, ok := CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"admin_id":  current.AdminID,
			"tenant_id": current.TenantID,
			"role":      string(current.Role),
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func TestSessionRequired(t *testing.T) {
	principal := testPrincipal(domain.RoleTenantAdmin, "tenant-1")

	t.Run("valid session cookie", func(t *testing.T) {
		router := setupSessionRouter(principal)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("valid bearer token fallback", func(t *testing.T) {
		router := setupSessionRouter(principal)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		router := setupSessionRouter(principal)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
		req.Header.Set("Authorization", "Bearer stale-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		router := setupSessionRouter(principal)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		router := setupSessionRouter(principal)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		router := setupSessionRouter(principal)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *domain.Principal
		min        domain.Role
		wantStatus int
	}{
		{
			name:       "tenant_admin passes tenant_admin gate",
			principal:  testPrincipal(domain.RoleTenantAdmin, "tenant-1"),
			min:        domain.RoleTenantAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "super_admin passes tenant_admin gate",
			principal:  testPrincipal(domain.RoleSuperAdmin, ""),
			min:        domain.RoleTenantAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "super_admin passes super_admin gate",
			principal:  testPrincipal(domain.RoleSuperAdmin, ""),
			min:        domain.RoleSuperAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "tenant_admin rejected by super_admin gate",
			principal:  testPrincipal(domain.RoleTenantAdmin, "tenant-1"),
			min:        domain.RoleSuperAdmin,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSessionRouter(tt.principal, RequireRole(tt.min))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}

	t.Run("no principal in context", func(t *testing.T) {
		router := gin.New()
		router.GET("/protected", RequireRole(domain.RoleTenantAdmin), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})
}

func TestRequireTenant(t *testing.T) {
	t.Run("salon-bound principal passes", func(t *testing.T) {
		router := setupSessionRouter(testPrincipal(domain.RoleTenantAdmin, "tenant-1"), RequireTenant())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("super_admin has no tenant and is rejected", func(t *testing.T) {
		router := setupSessionRouter(testPrincipal(domain.RoleSuperAdmin, ""), RequireTenant())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "good-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})
}

func TestCurrentPrincipal(t *testing.T) {
	t.Run("missing principal", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if _, ok := CurrentPrincipal(c); ok {
			t.Error("expected no principal in a fresh context")
		}
	})

	t.Run("wrong type under the key", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(ContextKeyPrincipal, "not-a-principal")
		if _, ok := CurrentPrincipal(c); ok {
			t.Error("expected type mismatch to be reported")
		}
	})
}
