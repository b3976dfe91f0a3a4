package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/matthewbaird/showcase/internal/database"
	"github.com/matthewbaird/showcase/internal/types"
)

var _ Store = (*SQLStore)(nil)

// SQLStore implements Store on the "resumes" table, one JSON document per
// resume. Updates read and write inside one transaction.
type SQLStore struct {
	drv dialect.Driver
	now func() time.Time
}

// NewSQLStore creates a store over a migrated driver.
func NewSQLStore(drv dialect.Driver) *SQLStore {
	return &SQLStore{drv: drv, now: time.Now}
}

func (s *SQLStore) builder() *entsql.DialectBuilder {
	return entsql.Dialect(s.drv.Dialect())
}

func (s *SQLStore) Create(ctx context.Context, r types.Resume) (types.Resume, error) {
	r.ID = newID()
	r.UpdatedAt = s.now()
	doc, err := json.Marshal(r)
	if err != nil {
		return types.Resume{}, fmt.Errorf("encoding resume: %w", err)
	}

	query, args := s.builder().
		Insert(database.ResumesTableName).
		Columns("id", "document", "updated_at").
		Values(r.ID, doc, r.UpdatedAt).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return types.Resume{}, fmt.Errorf("inserting resume: %w", err)
	}
	return r, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (types.Resume, error) {
	return s.get(ctx, s.drv, id)
}

func (s *SQLStore) get(ctx context.Context, conn dialect.ExecQuerier, id string) (types.Resume, error) {
	query, args := s.builder().
		Select("document").
		From(entsql.Table(database.ResumesTableName)).
		Where(entsql.EQ("id", id)).
		Query()
	rows := &entsql.Rows{}
	if err := conn.Query(ctx, query, args, rows); err != nil {
		return types.Resume{}, fmt.Errorf("querying resume: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return types.Resume{}, fmt.Errorf("querying resume: %w", err)
		}
		return types.Resume{}, ErrNotFound
	}
	var doc []byte
	if err := rows.Scan(&doc); err != nil {
		return types.Resume{}, fmt.Errorf("scanning resume: %w", err)
	}
	var r types.Resume
	if err := json.Unmarshal(doc, &r); err != nil {
		return types.Resume{}, fmt.Errorf("decoding resume: %w", err)
	}
	return r, nil
}

func (s *SQLStore) Update(ctx context.Context, id string, fn func(types.Resume) types.Resume) (types.Resume, error) {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return types.Resume{}, fmt.Errorf("starting transaction: %w", err)
	}
	r, err := s.update(ctx, tx, id, fn)
	if err != nil {
		_ = tx.Rollback()
		return types.Resume{}, err
	}
	if err := tx.Commit(); err != nil {
		return types.Resume{}, fmt.Errorf("committing resume: %w", err)
	}
	return r, nil
}

func (s *SQLStore) update(ctx context.Context, tx dialect.Tx, id string, fn func(types.Resume) types.Resume) (types.Resume, error) {
	cur, err := s.get(ctx, tx, id)
	if err != nil {
		return types.Resume{}, err
	}
	next := fn(cur)
	next.ID = id
	next.UpdatedAt = s.now()
	doc, err := json.Marshal(next)
	if err != nil {
		return types.Resume{}, fmt.Errorf("encoding resume: %w", err)
	}

	query, args := s.builder().
		Update(database.ResumesTableName).
		Set("document", doc).
		Set("updated_at", next.UpdatedAt).
		Where(entsql.EQ("id", id)).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		return types.Resume{}, fmt.Errorf("updating resume: %w", err)
	}
	return next, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	query, args := s.builder().
		Delete(database.ResumesTableName).
		Where(entsql.EQ("id", id)).
		Query()
	var res sql.Result
	if err := s.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
