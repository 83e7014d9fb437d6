package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

type stubCartRepo struct {
	items     []models.CartItem
	insertErr error
	inserted  *models.CartItem
	deleted   []uuid.UUID
	cleared   bool
}

func (s *stubCartRepo) WithTx(tx *gorm.DB) CartRepository { return s }

func (s *stubCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	return s.items, nil
}

func (s *stubCartRepo) Insert(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.inserted = item
	return item, nil
}

func (s *stubCartRepo) Delete(ctx context.Context, userID, mediaItemID uuid.UUID) error {
	s.deleted = append(s.deleted, mediaItemID)
	return nil
}

func (s *stubCartRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	s.cleared = true
	return nil
}

type stubMediaLoader struct {
	item *models.MediaItem
	err  error
}

func (s stubMediaLoader) GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

type stubProfileLoader struct {
	profile *models.CreatorProfile
	err     error
}

func (s stubProfileLoader) GetByID(ctx context.Context, id uuid.UUID) (*models.CreatorProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func testMediaAndProfile() (*models.MediaItem, *models.CreatorProfile) {
	profileID := uuid.New()
	photoPrice := int64(7500)
	profile := &models.CreatorProfile{
		ID:              profileID,
		UserID:          uuid.New(),
		DisplayName:     "Alice",
		PhotoPriceCents: &photoPrice,
	}
	item := &models.MediaItem{
		ID:        uuid.New(),
		CreatorID: profileID,
		Title:     "Sunset",
		Type:      enums.MediaTypeImage,
		Available: true,
	}
	return item, profile
}

func TestServiceAddBuildsSnapshot(t *testing.T) {
	t.Parallel()

	item, profile := testMediaAndProfile()
	repo := &stubCartRepo{}
	svc, err := NewService(repo, stubMediaLoader{item: item}, stubProfileLoader{profile: profile}, 5000)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	userID := uuid.New()
	got, err := svc.Add(context.Background(), userID, item.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if got.UserID != userID || got.MediaItemID != item.ID || got.CreatorID != profile.ID {
		t.Fatalf("unexpected line keys: %+v", got)
	}
	if got.Snapshot.Media.Title != "Sunset" {
		t.Fatalf("snapshot missing media title: %+v", got.Snapshot)
	}
	if got.Snapshot.Media.UnitPriceCents != 7500 {
		t.Fatalf("expected profile photo price in snapshot, got %d", got.Snapshot.Media.UnitPriceCents)
	}
	if got.Snapshot.Creator.DisplayName != "Alice" {
		t.Fatalf("snapshot missing creator: %+v", got.Snapshot)
	}
}

func TestServiceAddUnavailableMedia(t *testing.T) {
	t.Parallel()

	notFound := pkgerrors.New(pkgerrors.CodeNotFound, "media item not found")
	repo := &stubCartRepo{}
	svc, err := NewService(repo, stubMediaLoader{err: notFound}, stubProfileLoader{}, 5000)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Add(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if repo.inserted != nil {
		t.Fatal("nothing should be inserted for unavailable media")
	}
}

func TestServiceAddDuplicateConflict(t *testing.T) {
	t.Parallel()

	item, profile := testMediaAndProfile()
	conflict := pkgerrors.New(pkgerrors.CodeConflict, "Item already in cart")
	repo := &stubCartRepo{insertErr: conflict}
	svc, err := NewService(repo, stubMediaLoader{item: item}, stubProfileLoader{profile: profile}, 5000)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Add(context.Background(), uuid.New(), item.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if typed.Message() != "Item already in cart" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceRemoveAndClear(t *testing.T) {
	t.Parallel()

	item, profile := testMediaAndProfile()
	repo := &stubCartRepo{}
	svc, err := NewService(repo, stubMediaLoader{item: item}, stubProfileLoader{profile: profile}, 5000)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	userID := uuid.New()
	if err := svc.Remove(context.Background(), userID, item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != item.ID {
		t.Fatalf("expected delete for %s, got %+v", item.ID, repo.deleted)
	}

	if err := svc.Clear(context.Background(), userID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !repo.cleared {
		t.Fatal("expected clear to hit the repository")
	}
}

func TestServiceListGroups(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	bob := uuid.New()
	repo := &stubCartRepo{items: []models.CartItem{
		line(alice, "Alice"),
		line(bob, "Bob"),
		line(alice, "Alice"),
	}}
	item, profile := testMediaAndProfile()
	svc, err := NewService(repo, stubMediaLoader{item: item}, stubProfileLoader{profile: profile}, 5000)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	view, err := svc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(view.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(view.Items))
	}
	if len(view.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(view.Groups))
	}
}
