package models

// Product is a catalog record. Image URLs are opaque references to
// externally hosted images.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
	ImageURL string `json:"image_url"`
}

// ProductUpdate describes a partial update. Nil fields are left unchanged.
type ProductUpdate struct {
	Name     *string `json:"name"`
	Count    *int64  `json:"count"`
	ImageURL *string `json:"image_url"`
}
