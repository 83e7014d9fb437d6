package media

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/pagination"
)

type stubMediaRepo struct {
	created      []*models.MediaItem
	rows         []models.MediaItem
	unavailable  []uuid.UUID
	missingOnSet bool
}

func (s *stubMediaRepo) Create(ctx context.Context, item *models.MediaItem) (*models.MediaItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.created = append(s.created, item)
	return item, nil
}

func (s *stubMediaRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, onlyAvailable bool, cursor *pagination.Cursor, limit int) ([]models.MediaItem, error) {
	if len(s.rows) > limit {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func (s *stubMediaRepo) SetUnavailable(ctx context.Context, creatorID, id uuid.UUID) error {
	if s.missingOnSet {
		return pkgerrors.New(pkgerrors.CodeNotFound, "media item not found")
	}
	s.unavailable = append(s.unavailable, id)
	return nil
}

type stubProfileLoader struct {
	profile *models.CreatorProfile
}

func (s *stubProfileLoader) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error) {
	if s.profile == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "creator profile not found")
	}
	return s.profile, nil
}

func newMediaFixture(t *testing.T) (*stubMediaRepo, *stubProfileLoader, Service) {
	t.Helper()
	repo := &stubMediaRepo{}
	profiles := &stubProfileLoader{profile: &models.CreatorProfile{ID: uuid.New(), UserID: uuid.New()}}
	svc, err := NewService(repo, profiles)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return repo, profiles, svc
}

func TestPublishExplicitPrice(t *testing.T) {
	t.Parallel()

	repo, profiles, svc := newMediaFixture(t)
	price := int64(8000)

	item, err := svc.Publish(context.Background(), profiles.profile.UserID, PublishInput{
		Title:          "Sunset",
		Type:           enums.MediaTypeImage,
		URL:            "https://cdn.example.com/sunset.jpg",
		UnitPriceCents: &price,
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if item.CreatorID != profiles.profile.ID {
		t.Fatalf("item must belong to the caller's profile, got %s", item.CreatorID)
	}
	if item.UnitPriceCents == nil || *item.UnitPriceCents != 8000 {
		t.Fatalf("unexpected unit price %v", item.UnitPriceCents)
	}
	if !item.Available {
		t.Fatal("new items start available")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestPublishInheritsProfilePrice(t *testing.T) {
	t.Parallel()

	_, profiles, svc := newMediaFixture(t)
	videoPrice := int64(12000)
	profiles.profile.VideoPriceCents = &videoPrice

	item, err := svc.Publish(context.Background(), profiles.profile.UserID, PublishInput{
		Title: "Clip",
		Type:  enums.MediaTypeVideo,
		URL:   "https://cdn.example.com/clip.mp4",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if item.UnitPriceCents == nil || *item.UnitPriceCents != 12000 {
		t.Fatalf("video should inherit the profile video price, got %v", item.UnitPriceCents)
	}
}

func TestPublishNoPriceAnywhere(t *testing.T) {
	t.Parallel()

	_, profiles, svc := newMediaFixture(t)

	item, err := svc.Publish(context.Background(), profiles.profile.UserID, PublishInput{
		Title: "Sunset",
		Type:  enums.MediaTypeImage,
		URL:   "https://cdn.example.com/sunset.jpg",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if item.UnitPriceCents != nil {
		t.Fatalf("without any configured price the item stays unpriced, got %v", item.UnitPriceCents)
	}
}

func TestPublishValidation(t *testing.T) {
	t.Parallel()

	_, profiles, svc := newMediaFixture(t)
	negative := int64(-5)

	cases := []struct {
		name  string
		input PublishInput
	}{
		{"missing title", PublishInput{Type: enums.MediaTypeImage, URL: "https://x"}},
		{"bad type", PublishInput{Title: "A", Type: enums.MediaType("gif"), URL: "https://x"}},
		{"missing url", PublishInput{Title: "A", Type: enums.MediaTypeImage}},
		{"negative price", PublishInput{Title: "A", Type: enums.MediaTypeImage, URL: "https://x", UnitPriceCents: &negative}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Publish(context.Background(), profiles.profile.UserID, tc.input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	t.Parallel()

	repo, profiles, svc := newMediaFixture(t)
	mediaID := uuid.New()

	if err := svc.Delete(context.Background(), profiles.profile.UserID, mediaID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.unavailable) != 1 || repo.unavailable[0] != mediaID {
		t.Fatalf("expected soft delete of %s, got %v", mediaID, repo.unavailable)
	}
}

func TestDeleteForeignItemReadsAsNotFound(t *testing.T) {
	t.Parallel()

	repo, profiles, svc := newMediaFixture(t)
	repo.missingOnSet = true

	err := svc.Delete(context.Background(), profiles.profile.UserID, uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListOwnPaging(t *testing.T) {
	t.Parallel()

	repo, profiles, svc := newMediaFixture(t)
	base := time.Now().UTC()
	for i := 0; i < 4; i++ {
		repo.rows = append(repo.rows, models.MediaItem{
			ID:        uuid.New(),
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}

	result, err := svc.ListOwn(context.Background(), profiles.profile.UserID, pagination.Params{Limit: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Items) != 3 || result.NextCursor == "" {
		t.Fatalf("unexpected page %+v", result)
	}
}

func TestListOwnInvalidCursor(t *testing.T) {
	t.Parallel()

	_, profiles, svc := newMediaFixture(t)

	_, err := svc.ListOwn(context.Background(), profiles.profile.UserID, pagination.Params{Cursor: "???"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
