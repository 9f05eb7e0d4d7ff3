package entities

import "strconv"

// Catalog is the joined content of the three stored collections.
type Catalog struct {
	SalesProfiles []SalesProfile `json:"salesProfiles"`
	Products      []Product      `json:"products"`
	CoverImages   []CoverImage   `json:"coverImages"`
}

// Collection names of the remote store.
const (
	CollectionSalesProfiles = "sales_profiles"
	CollectionProducts      = "products"
	CollectionCoverImages   = "cover_images"
)

// LegacyRef builds the marker stored on records copied from local storage.
func LegacyRef(collection string, localID int64) string {
	return collection + ":" + strconv.FormatInt(localID, 10)
}
