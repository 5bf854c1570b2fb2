package baxus

// ListingHit is one document in the listings search response. The API
// returns search-engine hits, so the listing itself sits under _source.
type ListingHit struct {
	ID     string        `json:"_id"`
	Source ListingSource `json:"_source"`
}

// ListingSource is the listing document inside a hit.
type ListingSource struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
	AnimationURL string  `json:"animationUrl"`
}
