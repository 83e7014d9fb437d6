package requests

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

type requestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.LicenseRequest, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.LicenseRequest, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.LicenseRequest, error)
}

type profileLoader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error)
}

// ListResult is one page of license requests plus the next cursor.
type ListResult struct {
	Requests   []models.LicenseRequest `json:"requests"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

// Service exposes role-scoped license request operations. Buyers see the
// requests they opened, creators the ones addressed to them.
type Service interface {
	ListForBuyer(ctx context.Context, buyerID uuid.UUID, params pagination.Params) (*ListResult, error)
	ListForCreator(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error)
	Decide(ctx context.Context, userID, requestID uuid.UUID, decision string) error
}

type service struct {
	repo     requestRepository
	profiles profileLoader
}

// NewService builds a license request service.
func NewService(repo requestRepository, profiles profileLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("request repository required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	return &service{repo: repo, profiles: profiles}, nil
}

func (s *service) ListForBuyer(ctx context.Context, buyerID uuid.UUID, params pagination.Params) (*ListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.ListByBuyer(ctx, buyerID, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	return pageResult(rows, limit), nil
}

func (s *service) ListForCreator(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.ListByCreator(ctx, profile.ID, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	return pageResult(rows, limit), nil
}

// Decide validates the creator's decision on a pending request and then
// reports the flow as not implemented: settlement needs a payout path that
// does not exist yet, and silently flipping the status without one would
// strand money state.
func (s *service) Decide(ctx context.Context, userID, requestID uuid.UUID, decision string) error {
	status, err := enums.ParseRequestStatus(decision)
	if err != nil || status == enums.RequestStatusPending {
		return pkgerrors.New(pkgerrors.CodeValidation, "decision must be completed or rejected")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.CreatorID != profile.ID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "license request not found")
	}
	if req.Status != enums.RequestStatusPending {
		return pkgerrors.New(pkgerrors.CodeConflict, "license request already decided")
	}

	return pkgerrors.New(pkgerrors.CodeNotImplemented, "request decisions are not available yet")
}

func pageResult(rows []models.LicenseRequest, limit int) *ListResult {
	result := &ListResult{Requests: rows}
	if len(rows) > limit {
		result.Requests = rows[:limit]
		last := result.Requests[len(result.Requests)-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return result
}
