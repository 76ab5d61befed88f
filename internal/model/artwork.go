package model

// Artwork is an uploaded customization image. URL is what goes into
// Customization.Image.
type Artwork struct {
	URL         string `json:"url"`
	PublicID    string `json:"publicId"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}
