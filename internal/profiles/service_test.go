package profiles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stockless/stockless-backend/internal/media"
	"github.com/stockless/stockless-backend/pkg/db"
	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
)

func setupProfileTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS creator_profiles (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE,
  display_name TEXT NOT NULL,
  bio TEXT,
  avatar_url TEXT,
  tags TEXT,
  restrictions TEXT,
  photo_price_cents INTEGER,
  video_price_cents INTEGER,
  social_media_connected BOOLEAN,
  contract_signed BOOLEAN,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE TABLE IF NOT EXISTS media_items (
  id TEXT PRIMARY KEY,
  creator_id TEXT NOT NULL,
  title TEXT NOT NULL,
  type TEXT NOT NULL,
  url TEXT NOT NULL,
  thumbnail_url TEXT,
  unit_price_cents INTEGER,
  available BOOLEAN,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)

	return conn
}

func newProfileService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(conn), db.NewFromConn(conn), media.NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func seedProfile(t *testing.T, conn *gorm.DB) *models.CreatorProfile {
	t.Helper()
	profile := &models.CreatorProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		DisplayName: "Ava",
		Bio:         "landscapes",
	}
	require.NoError(t, conn.Create(profile).Error)
	return profile
}

func seedMedia(t *testing.T, conn *gorm.DB, creatorID uuid.UUID, kind enums.MediaType, priceCents int64) *models.MediaItem {
	t.Helper()
	item := &models.MediaItem{
		ID:             uuid.New(),
		CreatorID:      creatorID,
		Title:          "item",
		Type:           kind,
		URL:            "https://cdn.example.com/a",
		UnitPriceCents: &priceCents,
		Available:      true,
	}
	require.NoError(t, conn.Create(item).Error)
	return item
}

func TestGetOwnMissingProfile(t *testing.T) {
	svc := newProfileService(t, setupProfileTestDB(t))

	_, err := svc.GetOwn(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateOwnPartial(t *testing.T) {
	conn := setupProfileTestDB(t)
	svc := newProfileService(t, conn)
	profile := seedProfile(t, conn)

	bio := "updated bio"
	updated, err := svc.UpdateOwn(context.Background(), profile.UserID, UpdateInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "updated bio", updated.Bio)
	assert.Equal(t, "Ava", updated.DisplayName, "untouched fields survive")
	assert.Nil(t, updated.PhotoPriceCents)
}

func TestUpdateOwnPricePropagatesToMedia(t *testing.T) {
	conn := setupProfileTestDB(t)
	svc := newProfileService(t, conn)
	profile := seedProfile(t, conn)

	photo := seedMedia(t, conn, profile.ID, enums.MediaTypeImage, 4000)
	video := seedMedia(t, conn, profile.ID, enums.MediaTypeVideo, 9000)
	foreign := seedMedia(t, conn, uuid.New(), enums.MediaTypeImage, 4000)

	newPhotoPrice := int64(6000)
	_, err := svc.UpdateOwn(context.Background(), profile.UserID, UpdateInput{PhotoPriceCents: &newPhotoPrice})
	require.NoError(t, err)

	// Each lookup needs its own destination: gorm folds a previously loaded
	// primary key into the next query's conditions.
	var reloadedPhoto models.MediaItem
	require.NoError(t, conn.First(&reloadedPhoto, "id = ?", photo.ID).Error)
	require.NotNil(t, reloadedPhoto.UnitPriceCents)
	assert.Equal(t, int64(6000), *reloadedPhoto.UnitPriceCents, "photo price syncs to image rows")

	var reloadedVideo models.MediaItem
	require.NoError(t, conn.First(&reloadedVideo, "id = ?", video.ID).Error)
	require.NotNil(t, reloadedVideo.UnitPriceCents)
	assert.Equal(t, int64(9000), *reloadedVideo.UnitPriceCents, "video rows untouched by a photo price change")

	var reloadedForeign models.MediaItem
	require.NoError(t, conn.First(&reloadedForeign, "id = ?", foreign.ID).Error)
	require.NotNil(t, reloadedForeign.UnitPriceCents)
	assert.Equal(t, int64(4000), *reloadedForeign.UnitPriceCents, "other creators' media untouched")
}

func TestUpdateOwnNegativePrice(t *testing.T) {
	conn := setupProfileTestDB(t)
	svc := newProfileService(t, conn)
	profile := seedProfile(t, conn)

	bad := int64(-1)
	_, err := svc.UpdateOwn(context.Background(), profile.UserID, UpdateInput{VideoPriceCents: &bad})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateOwnListingFlags(t *testing.T) {
	conn := setupProfileTestDB(t)
	svc := newProfileService(t, conn)
	profile := seedProfile(t, conn)
	require.False(t, profile.Listed())

	yes := true
	updated, err := svc.UpdateOwn(context.Background(), profile.UserID, UpdateInput{
		SocialMediaConnected: &yes,
		ContractSigned:       &yes,
	})
	require.NoError(t, err)
	assert.True(t, updated.Listed(), "both flags set makes the profile catalog-visible")
}
