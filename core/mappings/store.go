package mappings

import (
	"context"
	"database/sql"

	"github.com/mwatts/biblelib/core/errors"
	"github.com/mwatts/biblelib/core/sqlite"
)

// Store is a SQLite-backed index over a mappings set. It supports
// repeated lookups by any edition's word id without rescanning the TSV.
type Store struct {
	db *sql.DB
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS mappings (
	na1904_id   TEXT NOT NULL,
	na1904_text TEXT NOT NULL,
	na27_id     TEXT NOT NULL,
	na28_id     TEXT NOT NULL,
	sblgnt_id   TEXT NOT NULL,
	sblgnt_text TEXT NOT NULL,
	marble_id   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mappings_na1904 ON mappings(na1904_id);
CREATE INDEX IF NOT EXISTS idx_mappings_na28   ON mappings(na28_id);
CREATE INDEX IF NOT EXISTS idx_mappings_sblgnt ON mappings(sblgnt_id);
CREATE INDEX IF NOT EXISTS idx_mappings_marble ON mappings(marble_id);
`

// OpenStore opens or creates a mappings database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, errors.NewIO("init", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load replaces the store contents with the given mappings in a single
// transaction.
func (s *Store) Load(ctx context.Context, m Mappings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM mappings`); err != nil {
		return errors.Wrap(err, "clear mappings")
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO mappings (na1904_id, na1904_text, na27_id, na28_id, sblgnt_id, sblgnt_text, marble_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for _, row := range m {
		_, err := stmt.ExecContext(ctx,
			row.NA1904ID, row.NA1904Text, row.NA27ID, row.NA28ID,
			row.SBLGNTID, row.SBLGNTText, row.MARBLEID)
		if err != nil {
			return errors.Wrap(err, "insert mapping")
		}
	}
	return tx.Commit()
}

// Count reports the number of stored mappings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mappings`).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "count mappings")
	}
	return n, nil
}

// ByNA1904 returns the mappings whose Nestle 1904 id matches.
func (s *Store) ByNA1904(ctx context.Context, id string) (Mappings, error) {
	return s.query(ctx, "na1904_id", id)
}

// ByNA28 returns the mappings whose Nestle-Aland 28 id matches.
func (s *Store) ByNA28(ctx context.Context, id string) (Mappings, error) {
	return s.query(ctx, "na28_id", id)
}

// BySBLGNT returns the mappings whose SBL GNT id matches.
func (s *Store) BySBLGNT(ctx context.Context, id string) (Mappings, error) {
	return s.query(ctx, "sblgnt_id", id)
}

// ByMARBLE returns the mappings whose MARBLE id matches.
func (s *Store) ByMARBLE(ctx context.Context, id string) (Mappings, error) {
	return s.query(ctx, "marble_id", id)
}

func (s *Store) query(ctx context.Context, column, id string) (Mappings, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT na1904_id, na1904_text, na27_id, na28_id, sblgnt_id, sblgnt_text, marble_id
		FROM mappings WHERE `+column+` = ?`, id)
	if err != nil {
		return nil, errors.Wrap(err, "query mappings")
	}
	defer rows.Close()

	var out Mappings
	for rows.Next() {
		var m Mapping
		err := rows.Scan(&m.NA1904ID, &m.NA1904Text, &m.NA27ID, &m.NA28ID,
			&m.SBLGNTID, &m.SBLGNTText, &m.MARBLEID)
		if err != nil {
			return nil, errors.Wrap(err, "scan mapping")
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate mappings")
	}
	if len(out) == 0 {
		return nil, errors.NewNotFound("mapping", id)
	}
	return out, nil
}
