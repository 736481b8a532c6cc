package catalog

import (
	"context"
	"hash/fnv"
	"strconv"

	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
)

// MockClient serves deterministic canned items for offline development.
// The same parameters always yield the same items, so rotation and
// replace behavior can be exercised without network access.
type MockClient struct {
	logger *zap.Logger
}

// NewMockClient creates the offline catalog.
func NewMockClient(logger *zap.Logger) *MockClient {
	return &MockClient{logger: logger}
}

// Search generates params.Limit items keyed by subcategory, genre and
// keyword. The shape contract matches the live client exactly.
func (m *MockClient) Search(ctx context.Context, params outfit.SearchParams) ([]outfit.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params = params.Clamped()

	itemType := "Unknown"
	if slot, ok := outfit.SlotForSubcategory(params.Subcategory); ok {
		itemType = string(slot)
	}

	base := seed(params)
	items := make([]outfit.Item, 0, params.Limit)
	for i := 0; i < params.Limit; i++ {
		items = append(items, outfit.Item{
			AssetID: strconv.FormatUint(base+uint64(i)*7919, 10),
			Type:    itemType,
		})
	}

	m.logger.Debug("mock catalog search",
		zap.Int("subcategory", params.Subcategory),
		zap.String("keyword", params.Keyword),
		zap.Int("items", len(items)))
	return items, nil
}

func seed(params outfit.SearchParams) uint64 {
	h := fnv.New64a()
	h.Write([]byte(params.Keyword))
	h.Write([]byte{byte(params.Subcategory), byte(params.Genre)})
	// Keep ids in a plausible asset-id range.
	return 100_000_000 + h.Sum64()%900_000_000
}
