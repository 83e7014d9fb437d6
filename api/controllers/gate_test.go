package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/api/middleware"
	authsvc "github.com/stockless/stockless-backend/internal/auth"
	"github.com/stockless/stockless-backend/pkg/db/models"
)

type stubGateProfiles struct {
	profile *models.CreatorProfile
	err     error
}

func (s stubGateProfiles) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error) {
	return s.profile, s.err
}

func decodeGateResult(t *testing.T, resp *httptest.ResponseRecorder) authsvc.GateResult {
	t.Helper()
	var envelope struct {
		Data authsvc.GateResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestGateAnonymous(t *testing.T) {
	svc, err := authsvc.NewGateService(stubGateProfiles{})
	if err != nil {
		t.Fatalf("gate service: %v", err)
	}
	handler := Gate(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gate", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	result := decodeGateResult(t, resp)
	if result.State != authsvc.StateUnauthenticated {
		t.Fatalf("unexpected state %q", result.State)
	}
	if result.RedirectTo != authsvc.RouteLogin {
		t.Fatalf("unexpected redirect %q", result.RedirectTo)
	}
}

func TestGateBuyer(t *testing.T) {
	svc, err := authsvc.NewGateService(stubGateProfiles{})
	if err != nil {
		t.Fatalf("gate service: %v", err)
	}
	handler := Gate(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gate", nil)
	ctx := middleware.WithUserID(req.Context(), uuid.NewString())
	ctx = middleware.WithRole(ctx, "buyer")
	req = req.WithContext(ctx)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	result := decodeGateResult(t, resp)
	if result.State != authsvc.StateBuyer {
		t.Fatalf("unexpected state %q", result.State)
	}
	if result.RedirectTo != authsvc.RouteBuyers {
		t.Fatalf("unexpected redirect %q", result.RedirectTo)
	}
}

func TestGateCreatorLandsOnOwnDashboard(t *testing.T) {
	profileID := uuid.New()
	svc, err := authsvc.NewGateService(stubGateProfiles{profile: &models.CreatorProfile{ID: profileID}})
	if err != nil {
		t.Fatalf("gate service: %v", err)
	}
	handler := Gate(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gate", nil)
	ctx := middleware.WithUserID(req.Context(), uuid.NewString())
	ctx = middleware.WithRole(ctx, "creator")
	req = req.WithContext(ctx)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	result := decodeGateResult(t, resp)
	if result.State != authsvc.StateCreator {
		t.Fatalf("unexpected state %q", result.State)
	}
	if want := authsvc.CreatorDashboardRoute(profileID); result.RedirectTo != want {
		t.Fatalf("expected redirect %q got %q", want, result.RedirectTo)
	}
}

func TestGateNilService(t *testing.T) {
	handler := Gate(nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gate", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
