package model

// MenuResponse is the filtered menu listing.
type MenuResponse struct {
	Categories []string   `json:"categories"`
	Items      []MenuItem `json:"items"`
}

// PendingRatingsResponse lists dishes awaiting a post-purchase rating.
type PendingRatingsResponse struct {
	Pending []string `json:"pending"`
}
