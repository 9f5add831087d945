package models

import (
	"gorm.io/datatypes"
)

const (
	// ImageSourceManual marks images uploaded by the author by hand.
	ImageSourceManual = "manual"
	// ImageSourceGenerated marks images produced by a generator pipeline.
	ImageSourceGenerated = "generated"
)

// Image is owned by exactly one Blog and lives inside its JSON images column.
// The whole row is replaced in one statement on every mutation, so the column
// behaves as a single document with insertion order preserved.
type Image struct {
	// URL is either an inline data URL ("data:image/...") or an absolute
	// http(s) URL. Validated once at ingestion, never touched afterwards.
	URL    string `json:"url"`
	Source string `json:"source"`
	// SubID is assigned when the entry is first persisted and stays stable
	// across reordering, unlike the positional index.
	SubID string `json:"subId,omitempty"`
}

type Blog struct {
	BaseModel

	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`

	Images datatypes.JSONSlice[Image] `json:"images"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account,omitempty"`
}
