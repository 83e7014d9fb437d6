package cart

import (
	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/pkg/db/models"
)

// CreatorGroup is a derived view: every cart line belonging to one creator.
type CreatorGroup struct {
	CreatorID   uuid.UUID         `json:"creator_id"`
	CreatorName string            `json:"creator_name"`
	Items       []models.CartItem `json:"items"`
}

// GroupByCreator partitions cart lines by owning creator. Groups appear in
// the order their first line was added, and lines keep their input order
// within a group. The function never mutates its input.
func GroupByCreator(items []models.CartItem) []CreatorGroup {
	if len(items) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(items))
	groups := make([]CreatorGroup, 0)

	for _, item := range items {
		i, seen := index[item.CreatorID]
		if !seen {
			index[item.CreatorID] = len(groups)
			groups = append(groups, CreatorGroup{
				CreatorID:   item.CreatorID,
				CreatorName: item.Snapshot.Creator.DisplayName,
			})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
