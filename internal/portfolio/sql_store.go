package portfolio

import (
	"context"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/matthewbaird/showcase/internal/database"
	"github.com/matthewbaird/showcase/internal/types"
)

var _ Store = (*SQLStore)(nil)

// SQLStore implements Store on the "portfolios" table, one JSON document
// per portfolio.
type SQLStore struct {
	drv dialect.Driver
}

// NewSQLStore creates a store over a migrated driver.
func NewSQLStore(drv dialect.Driver) *SQLStore {
	return &SQLStore{drv: drv}
}

func (s *SQLStore) Add(ctx context.Context, p types.Portfolio) (types.Portfolio, error) {
	p.ID = newID()
	doc, err := json.Marshal(p)
	if err != nil {
		return types.Portfolio{}, fmt.Errorf("encoding portfolio: %w", err)
	}

	query, args := entsql.Dialect(s.drv.Dialect()).
		Insert(database.PortfoliosTableName).
		Columns("id", "template", "document").
		Values(p.ID, string(p.Template), doc).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return types.Portfolio{}, fmt.Errorf("inserting portfolio: %w", err)
	}
	return p, nil
}

func (s *SQLStore) List(ctx context.Context) ([]types.Portfolio, error) {
	query, args := entsql.Dialect(s.drv.Dialect()).
		Select("document").
		From(entsql.Table(database.PortfoliosTableName)).
		OrderBy(entsql.Asc("seq")).
		Query()
	return s.query(ctx, query, args)
}

func (s *SQLStore) Get(ctx context.Context, id string) (types.Portfolio, error) {
	query, args := entsql.Dialect(s.drv.Dialect()).
		Select("document").
		From(entsql.Table(database.PortfoliosTableName)).
		Where(entsql.EQ("id", id)).
		Query()
	ps, err := s.query(ctx, query, args)
	if err != nil {
		return types.Portfolio{}, err
	}
	if len(ps) == 0 {
		return types.Portfolio{}, ErrNotFound
	}
	return ps[0], nil
}

func (s *SQLStore) query(ctx context.Context, query string, args []any) ([]types.Portfolio, error) {
	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("querying portfolios: %w", err)
	}
	defer rows.Close()

	var out []types.Portfolio
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning portfolio: %w", err)
		}
		var p types.Portfolio
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decoding portfolio: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
