package message

// PartType discriminates the ContentPart union.
type PartType string

// Content part variants.
const (
	PartText     PartType = "text"
	PartImageURL PartType = "image_url"
	PartFileURL  PartType = "file_url"
)

// ContentPart is one piece of multipart message content.
// Exactly one of Text or URL is set, according to Type.
type ContentPart struct {
	Type PartType `json:"type"`

	// Text content (when Type == PartText).
	Text string `json:"text,omitempty"`

	// URL for remote images and files (when Type == PartImageURL
	// or PartFileURL).
	URL string `json:"url,omitempty"`
}

// TextPart creates a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: PartText, Text: text}
}

// ImagePart creates an image content part referencing a URL.
func ImagePart(url string) ContentPart {
	return ContentPart{Type: PartImageURL, URL: url}
}

// FilePart creates a file content part referencing a URL.
func FilePart(url string) ContentPart {
	return ContentPart{Type: PartFileURL, URL: url}
}
