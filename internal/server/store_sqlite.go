package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

// SQLiteStore persists the entity catalog and the evaluated-answer log.
// Game sessions themselves live in memory only; nothing about a player's
// progress survives the session.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS regions (
			id   TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			kind TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settlements (
			name      TEXT PRIMARY KEY,
			region_id TEXT NOT NULL,
			lat       REAL NOT NULL,
			lng       REAL NOT NULL,
			capital   TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS answers (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id     TEXT NOT NULL,
			mode        TEXT NOT NULL,
			variant     TEXT NOT NULL,
			target      TEXT NOT NULL,
			given       TEXT NOT NULL,
			is_correct  INTEGER NOT NULL,
			answered_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_answers_mode ON answers(mode)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// SeedCatalog fills the catalog tables from cat when they are empty.
func (s *SQLiteStore) SeedCatalog(ctx context.Context, cat *geoquiz.Catalog) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM regions`).Scan(&count); err != nil {
		return fmt.Errorf("counting regions: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed: %w", err)
	}
	defer tx.Rollback()

	for _, r := range cat.Regions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO regions (id, name, kind) VALUES (?, ?, ?)
		`, r.ID, r.Name, string(r.Kind)); err != nil {
			return fmt.Errorf("seeding region %q: %w", r.Name, err)
		}
	}
	for _, st := range cat.Settlements {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settlements (name, region_id, lat, lng, capital) VALUES (?, ?, ?, ?, ?)
		`, st.Name, st.RegionID, st.Lat, st.Lng, string(st.Capital)); err != nil {
			return fmt.Errorf("seeding settlement %q: %w", st.Name, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadCatalog(ctx context.Context) (*geoquiz.Catalog, error) {
	cat := &geoquiz.Catalog{}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, kind FROM regions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("loading regions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r geoquiz.Region
		var kind string
		if err := rows.Scan(&r.ID, &r.Name, &kind); err != nil {
			return nil, fmt.Errorf("scanning region: %w", err)
		}
		r.Kind = geoquiz.Kind(kind)
		cat.Regions = append(cat.Regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading regions: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT name, region_id, lat, lng, capital FROM settlements ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("loading settlements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var st geoquiz.Settlement
		var capital string
		if err := rows.Scan(&st.Name, &st.RegionID, &st.Lat, &st.Lng, &capital); err != nil {
			return nil, fmt.Errorf("scanning settlement: %w", err)
		}
		st.Capital = geoquiz.CapitalRank(capital)
		cat.Settlements = append(cat.Settlements, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading settlements: %w", err)
	}

	return cat, nil
}

func (s *SQLiteStore) RecordAnswer(ctx context.Context, rec AnswerRecord) error {
	isCorrect := 0
	if rec.Correct {
		isCorrect = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answers (game_id, mode, variant, target, given, is_correct, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	`, rec.GameID, string(rec.Mode), string(rec.Variant), rec.Target, rec.Given, isCorrect)
	return err
}

func (s *SQLiteStore) Stats(ctx context.Context) ([]ModeStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mode, COUNT(*), SUM(is_correct)
		FROM answers
		GROUP BY mode
		ORDER BY mode
	`)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	var out []ModeStats
	for rows.Next() {
		var st ModeStats
		if err := rows.Scan(&st.Mode, &st.Answered, &st.Correct); err != nil {
			return nil, fmt.Errorf("scanning stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
