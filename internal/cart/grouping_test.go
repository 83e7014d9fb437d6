package cart

import (
	"testing"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/types"
)

func line(creatorID uuid.UUID, creatorName string) models.CartItem {
	return models.CartItem{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		MediaItemID: uuid.New(),
		CreatorID:   creatorID,
		Snapshot: types.CartSnapshot{
			Creator: types.CreatorSnapshot{ID: creatorID, DisplayName: creatorName},
		},
	}
}

func TestGroupByCreatorEmpty(t *testing.T) {
	t.Parallel()

	if groups := GroupByCreator(nil); groups != nil {
		t.Fatalf("expected nil groups for empty cart, got %+v", groups)
	}
}

func TestGroupByCreatorPartitionsAndPreservesOrder(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	bob := uuid.New()

	items := []models.CartItem{
		line(alice, "Alice"),
		line(bob, "Bob"),
		line(alice, "Alice"),
		line(alice, "Alice"),
	}

	groups := GroupByCreator(items)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].CreatorID != alice || groups[0].CreatorName != "Alice" {
		t.Fatalf("first group should be Alice (first added), got %+v", groups[0])
	}
	if groups[1].CreatorID != bob {
		t.Fatalf("second group should be Bob, got %+v", groups[1])
	}
	if len(groups[0].Items) != 3 || len(groups[1].Items) != 1 {
		t.Fatalf("unexpected group sizes: %d and %d", len(groups[0].Items), len(groups[1].Items))
	}

	if groups[0].Items[0].ID != items[0].ID || groups[0].Items[1].ID != items[2].ID {
		t.Fatal("lines should keep their input order within a group")
	}

	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	if total != len(items) {
		t.Fatalf("grouping dropped or duplicated lines: %d != %d", total, len(items))
	}
}

func TestGroupByCreatorDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	items := []models.CartItem{line(alice, "Alice"), line(alice, "Alice")}
	first := items[0].ID

	_ = GroupByCreator(items)

	if items[0].ID != first {
		t.Fatal("input slice was mutated")
	}
}
