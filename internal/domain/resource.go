package domain

import "time"

// ResourceType distinguishes external links from uploaded files.
type ResourceType string

const (
	ResourceLink ResourceType = "link"
	ResourceFile ResourceType = "file"
)

// ClientResource is a video, article or document the trainer shares with a
// client through the portal. Link resources carry a URL; file resources
// carry an object-storage key and are served via presigned download URLs.
type ClientResource struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"clientId"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url,omitempty"`
	ObjectKey   string       `json:"objectKey,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
