package outfit

// Item is the normalized catalog record exposed to clients.
// Identity is AssetID; Type carries the slot the item is worn in.
type Item struct {
	AssetID string `json:"assetId"`
	Type    string `json:"type"`
}
