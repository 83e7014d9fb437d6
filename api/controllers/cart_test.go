package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/api/middleware"
	cartsvc "github.com/stockless/stockless-backend/internal/cart"
	"github.com/stockless/stockless-backend/pkg/db/models"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

type stubCartService struct {
	view    *cartsvc.View
	line    *models.CartItem
	err     error
	cleared bool
}

func (s *stubCartService) List(ctx context.Context, userID uuid.UUID) (*cartsvc.View, error) {
	return s.view, s.err
}

func (s *stubCartService) Add(ctx context.Context, userID, mediaItemID uuid.UUID) (*models.CartItem, error) {
	return s.line, s.err
}

func (s *stubCartService) Remove(ctx context.Context, userID, mediaItemID uuid.UUID) error {
	return s.err
}

func (s *stubCartService) Clear(ctx context.Context, userID uuid.UUID) error {
	s.cleared = true
	return s.err
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := middleware.WithUserID(req.Context(), uuid.NewString())
	ctx = middleware.WithRole(ctx, "buyer")
	return req.WithContext(ctx)
}

func TestCartFetchSuccess(t *testing.T) {
	view := &cartsvc.View{
		Items:  []models.CartItem{{ID: uuid.New()}},
		Groups: []cartsvc.CreatorGroup{},
	}
	handler := CartFetch(&stubCartService{view: view}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodGet, "/api/v1/cart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data cartsvc.View `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(envelope.Data.Items))
	}
}

func TestCartFetchMissingAuthContext(t *testing.T) {
	handler := CartFetch(&stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartAddDuplicateConflict(t *testing.T) {
	handler := CartAdd(&stubCartService{err: pkgerrors.New(pkgerrors.CodeConflict, "Item already in cart")}, nil)

	body := `{"media_item_id":"` + uuid.NewString() + `"}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "Item already in cart" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestCartAddCreated(t *testing.T) {
	line := &models.CartItem{ID: uuid.New()}
	handler := CartAdd(&stubCartService{line: line}, nil)

	body := `{"media_item_id":"` + uuid.NewString() + `"}`
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", body))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestCartAddRejectsMalformedBody(t *testing.T) {
	handler := CartAdd(&stubCartService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/cart/items", `{"media_item_id":"nope"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartClear(t *testing.T) {
	svc := &stubCartService{}
	handler := CartClear(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodDelete, "/api/v1/cart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !svc.cleared {
		t.Fatal("expected clear to reach the service")
	}
}
