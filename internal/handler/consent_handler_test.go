package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/middleware"
	"github.com/elitebooker/elitebooker-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeConsentService returns one canned response or error for every call
type fakeConsentService struct {
	resp *dto.ConsentTemplateResponse
	err  error
}

func (f *fakeConsentService) Create(ctx context.Context, tenantID string, req *dto.CreateConsentTemplateRequest) (*dto.ConsentTemplateResponse, error) {
	return f.resp, f.err
}

func (f *fakeConsentService) Get(ctx context.Context, tenantID, id string) (*dto.ConsentTemplateResponse, error) {
	return f.resp, f.err
}

func (f *fakeConsentService) List(ctx context.Context, tenantID string, query *dto.ListConsentTemplatesQuery) (*dto.ListConsentTemplatesResponse, error) {
	return &dto.ListConsentTemplatesResponse{}, f.err
}

func (f *fakeConsentService) Update(ctx context.Context, tenantID, id string, req *dto.UpdateConsentTemplateRequest) (*dto.ConsentTemplateResponse, error) {
	return f.resp, f.err
}

func (f *fakeConsentService) Publish(ctx context.Context, principal *domain.Principal, id string) (*dto.ConsentTemplateResponse, error) {
	return f.resp, f.err
}

func (f *fakeConsentService) Archive(ctx context.Context, principal *domain.Principal, id string) (*dto.ConsentTemplateResponse, error) {
	return f.resp, f.err
}

func (f *fakeConsentService) Delete(ctx context.Context, tenantID, id string) error {
	return f.err
}

func (f *fakeConsentService) NewVersion(ctx context.Context, tenantID, id string) (*dto.ConsentTemplateResponse, error) {
	return f.resp, f.err
}

func setupConsentRouter(svc service.ConsentService) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyPrincipal, &domain.Principal{
			AdminID:  "admin-1",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-1",
		})
	})

	h := NewConsentHandler(svc)
	router.POST("/consent-templates", h.Create)
	router.GET("/consent-templates/:id", h.Get)
	router.PUT("/consent-templates/:id", h.Update)
	router.POST("/consent-templates/:id/publish", h.Publish)
	router.POST("/consent-templates/:id/archive", h.Archive)
	router.DELETE("/consent-templates/:id", h.Delete)
	router.POST("/consent-templates/:id/versions", h.NewVersion)
	return router
}

func errorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	if envelope.Error == nil {
		t.Fatal("expected an error in the response envelope")
	}
	return envelope.Error.Code
}

func TestConsentHandler_ErrorMapping(t *testing.T) {
	t.Run("missing template maps to 404", func(t *testing.T) {
		router := setupConsentRouter(&fakeConsentService{err: service.ErrConsentTemplateNotFound})

		req := httptest.NewRequest(http.MethodGet, "/consent-templates/tpl-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		router := setupConsentRouter(&fakeConsentService{err: service.ErrInvalidConsentTransition})

		req := httptest.NewRequest(http.MethodPost, "/consent-templates/tpl-1/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
		}
		if code := errorCode(t, w.Body); code != "INVALID_TRANSITION" {
			t.Errorf("expected error code INVALID_TRANSITION, got %q", code)
		}
	})

	t.Run("service-rejected empty update maps to 400", func(t *testing.T) {
		router := setupConsentRouter(&fakeConsentService{err: service.ErrEmptyUpdate})

		req := httptest.NewRequest(http.MethodPut, "/consent-templates/tpl-1", bytes.NewBufferString(`{"name": "New name"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
		if code := errorCode(t, w.Body); code != "INVALID_UPDATE" {
			t.Errorf("expected error code INVALID_UPDATE, got %q", code)
		}
	})

	t.Run("archive of a draft maps to 409", func(t *testing.T) {
		router := setupConsentRouter(&fakeConsentService{err: service.ErrInvalidConsentTransition})

		req := httptest.NewRequest(http.MethodPost, "/consent-templates/tpl-1/archive", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
		}
	})
}

func TestConsentHandler_Create(t *testing.T) {
	resp := &dto.ConsentTemplateResponse{ID: "tpl-1", Version: 1, Status: "draft"}
	router := setupConsentRouter(&fakeConsentService{resp: resp})

	t.Run("valid payload creates a draft", func(t *testing.T) {
		payload := `{
			"name": "Chemical Peel Consent",
			"sections": [{"type": "signature", "content": "Sign here", "required": true}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/consent-templates", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
		}
	})

	t.Run("missing sections is rejected", func(t *testing.T) {
		payload := `{"name": "Chemical Peel Consent"}`
		req := httptest.NewRequest(http.MethodPost, "/consent-templates", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("unknown section type is rejected", func(t *testing.T) {
		payload := `{
			"name": "Chemical Peel Consent",
			"sections": [{"type": "video", "content": "Watch this"}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/consent-templates", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}

func TestConsentHandler_Update(t *testing.T) {
	router := setupConsentRouter(&fakeConsentService{resp: &dto.ConsentTemplateResponse{ID: "tpl-1"}})

	t.Run("empty update is rejected before the service", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/consent-templates/tpl-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("renaming a draft succeeds", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/consent-templates/tpl-1", bytes.NewBufferString(`{"name": "New name"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})
}

func TestConsentHandler_NewVersion(t *testing.T) {
	router := setupConsentRouter(&fakeConsentService{resp: &dto.ConsentTemplateResponse{ID: "tpl-2", Version: 2, Status: "draft"}})

	req := httptest.NewRequest(http.MethodPost, "/consent-templates/tpl-1/versions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}
