package payload

import (
	"memoarc/internal/core"

	"github.com/jellydator/validation"
)

// CreateContentRequest carries a bookmark. The link is stored as given.
type CreateContentRequest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Type  string `json:"type"`
}

func (c CreateContentRequest) ToMessage() core.ContentMessage {
	return core.ContentMessage{
		Title: c.Title,
		Link:  c.Link,
		Type:  c.Type,
	}
}

type DeleteContentRequest struct {
	ContentID string `json:"contentId"`
}

func (d DeleteContentRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ContentID, validation.Required),
	)
}

type ShareRequest struct {
	Share bool `json:"share"`
}
