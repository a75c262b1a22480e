// Package domain holds the export-file shapes and ports for ingestion
package domain

import "encoding/json"

// Export is the top of a Telegram Desktop channel export (result.json)
type Export struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Messages []ExportMessage `json:"messages"`
}

// ExportMessage is one entry of the export's messages array. Only plain
// channel posts carry text; "service" entries are pins, photo changes
// and the like
type ExportMessage struct {
	ID           int              `json:"id" validate:"gt=0"`
	Type         string           `json:"type" validate:"required"`
	DateUnix     string           `json:"date_unixtime" validate:"required,numeric"`
	Text         json.RawMessage  `json:"text"`
	TextEntities []TextEntity     `json:"text_entities"`
	Reactions    []ExportReaction `json:"reactions"`
	Views        int              `json:"views"`
	Replies      int              `json:"replies"`
}

// TextEntity is one run of formatted text
type TextEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ExportReaction is one reaction bucket on a post. Custom emoji packs
// come through with an empty Emoji and a DocumentID instead
type ExportReaction struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Emoji      string `json:"emoji"`
	DocumentID string `json:"document_id"`
}
