package listing

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/matthewbaird/showcase/internal/database"
	"github.com/matthewbaird/showcase/internal/types"
)

var _ Store = (*SQLStore)(nil)

// propertyColumns is the projection read back by every query, in Scan order.
var propertyColumns = []string{
	"id", "name", "type", "price", "location", "description",
	"short_description", "image", "bedrooms", "bathrooms", "sqft",
	"latitude", "longitude", "featured",
}

// SQLStore implements Store on the "properties" table.
type SQLStore struct {
	drv dialect.Driver
}

// NewSQLStore creates a store over a migrated driver.
func NewSQLStore(drv dialect.Driver) *SQLStore {
	return &SQLStore{drv: drv}
}

func (s *SQLStore) builder() *entsql.DialectBuilder {
	return entsql.Dialect(s.drv.Dialect())
}

func (s *SQLStore) Add(ctx context.Context, candidate types.Property) (types.Property, error) {
	candidate.ID = newID()

	query, args := s.builder().Insert(database.PropertiesTableName).
		Columns(propertyColumns...).
		Values(
			candidate.ID, candidate.Name, string(candidate.Type), candidate.Price,
			candidate.Location, candidate.Description, candidate.ShortDescription,
			candidate.Image, candidate.Bedrooms, candidate.Bathrooms, candidate.Sqft,
			candidate.Coordinates.Lat, candidate.Coordinates.Lng, candidate.Featured,
		).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return types.Property{}, fmt.Errorf("inserting property: %w", err)
	}
	return candidate, nil
}

func (s *SQLStore) List(ctx context.Context) ([]types.Property, error) {
	query, args := s.builder().Select(propertyColumns...).
		From(entsql.Table(database.PropertiesTableName)).
		OrderBy(entsql.Asc("seq")).
		Query()
	return s.query(ctx, query, args)
}

func (s *SQLStore) Get(ctx context.Context, id string) (types.Property, error) {
	query, args := s.builder().Select(propertyColumns...).
		From(entsql.Table(database.PropertiesTableName)).
		Where(entsql.EQ("id", id)).
		Query()
	props, err := s.query(ctx, query, args)
	if err != nil {
		return types.Property{}, err
	}
	if len(props) == 0 {
		return types.Property{}, ErrNotFound
	}
	return props[0], nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	query, args := s.builder().Select(entsql.Count("*")).
		From(entsql.Table(database.PropertiesTableName)).
		Query()
	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("counting properties: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scanning property count: %w", err)
		}
	}
	return n, rows.Err()
}

func (s *SQLStore) query(ctx context.Context, query string, args []any) ([]types.Property, error) {
	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var props []types.Property
	for rows.Next() {
		var (
			p   types.Property
			typ string
		)
		err := rows.Scan(
			&p.ID, &p.Name, &typ, &p.Price, &p.Location, &p.Description,
			&p.ShortDescription, &p.Image, &p.Bedrooms, &p.Bathrooms, &p.Sqft,
			&p.Coordinates.Lat, &p.Coordinates.Lng, &p.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		p.Type = types.PropertyType(typ)
		props = append(props, p)
	}
	return props, rows.Err()
}
