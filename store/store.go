package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/viant/victor/vector"
)

// ErrNotFound is returned by Load when no vector is stored under the name.
var ErrNotFound = errors.New("store: vector not found")

// Match is a stored vector ranked against a query vector.
type Match struct {
	Name   string
	Vector vector.Vector
	// Angle to the query vector, in radians.
	Angle float32
}

// Store is a SQLite-backed workspace of named vectors. The database must be
// opened through engine.Open so that the vector SQL functions are available.
type Store struct {
	db *sql.DB
}

// New creates a Store and ensures the vectors schema exists.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts or replaces the vector stored under name.
func (s *Store) Save(ctx context.Context, name string, v vector.Vector) error {
	if name == "" {
		return fmt.Errorf("store: Save called with empty name")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO vectors(name, dim, data) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  dim = excluded.dim,
  data = excluded.data`, name, v.Len(), vector.Encode(v))
	if err != nil {
		return fmt.Errorf("store: save %q: %w", name, err)
	}
	return nil
}

// Load returns the vector stored under name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (vector.Vector, error) {
	if name == "" {
		return vector.Vector{}, fmt.Errorf("store: Load called with empty name")
	}
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM vectors WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return vector.Vector{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return vector.Vector{}, fmt.Errorf("store: load %q: %w", name, err)
	}
	return vector.Decode(data)
}

// Names returns the stored vector names in ascending order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM vectors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Remove deletes the vector stored under name. Removing a missing name is
// not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("store: Remove called with empty name")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM vectors WHERE name = ?`, name)
	return err
}

// Closest returns up to k stored vectors ordered by increasing angle to q.
// Stored vectors with zero norm are skipped. When k <= 0 all candidates are
// returned. A zero-norm query fails with vector.ErrDegenerateVector.
func (s *Store) Closest(ctx context.Context, q vector.Vector, k int) ([]Match, error) {
	if vector.Norm(q) == 0 {
		return nil, fmt.Errorf("store: closest: %w", vector.ErrDegenerateVector)
	}
	query := `
SELECT name, data, vec_angle(data, ?) AS angle
FROM vectors
WHERE vec_norm(data) > 0
ORDER BY angle, name`
	args := []interface{}{vector.Encode(q)}
	if k > 0 {
		query += " LIMIT ?"
		args = append(args, k)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: closest: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var (
			m     Match
			data  []byte
			angle float64
		)
		if err := rows.Scan(&m.Name, &data, &angle); err != nil {
			return nil, err
		}
		if m.Vector, err = vector.Decode(data); err != nil {
			return nil, err
		}
		m.Angle = float32(angle)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
