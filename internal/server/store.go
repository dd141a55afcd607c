package server

import (
	"context"
	"errors"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

var ErrNotFound = errors.New("not found")

// AnswerRecord is one evaluated answer, appended to the answer log.
type AnswerRecord struct {
	GameID  string
	Mode    geoquiz.Mode
	Variant geoquiz.Variant
	Target  string
	Given   string
	Correct bool
}

// ModeStats aggregates the answer log per mode for /api/stats.
type ModeStats struct {
	Mode     string `json:"mode"`
	Answered int    `json:"answered"`
	Correct  int    `json:"correct"`
}

type Store interface {
	// SeedCatalog inserts the catalog if the tables are empty. Idempotent.
	SeedCatalog(ctx context.Context, cat *geoquiz.Catalog) error
	// LoadCatalog reads the full entity catalog.
	LoadCatalog(ctx context.Context) (*geoquiz.Catalog, error)

	RecordAnswer(ctx context.Context, rec AnswerRecord) error
	Stats(ctx context.Context) ([]ModeStats, error)
}
