package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared with the SQL stores.
const (
	PropertiesTableName = "properties"
	PortfoliosTableName = "portfolios"
	ResumesTableName    = "resumes"
)

var (
	// PropertiesColumns holds the columns for the "properties" table.
	// seq is the autoincrement key that preserves insertion order.
	PropertiesColumns = []*schema.Column{
		{Name: "seq", Type: field.TypeInt, Increment: true},
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"apartment", "villa", "house", "condo", "townhouse"}},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "location", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "short_description", Type: field.TypeString},
		{Name: "image", Type: field.TypeString},
		{Name: "bedrooms", Type: field.TypeInt},
		{Name: "bathrooms", Type: field.TypeInt},
		{Name: "sqft", Type: field.TypeFloat64},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "featured", Type: field.TypeBool, Default: false},
	}
	// PropertiesTable holds the schema information for the "properties" table.
	PropertiesTable = &schema.Table{
		Name:       PropertiesTableName,
		Columns:    PropertiesColumns,
		PrimaryKey: []*schema.Column{PropertiesColumns[0]},
	}

	// PortfoliosColumns holds the columns for the "portfolios" table.
	// The committed record is stored whole as a JSON document.
	PortfoliosColumns = []*schema.Column{
		{Name: "seq", Type: field.TypeInt, Increment: true},
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "template", Type: field.TypeEnum, Enums: []string{"template1", "template2"}},
		{Name: "document", Type: field.TypeJSON},
	}
	// PortfoliosTable holds the schema information for the "portfolios" table.
	PortfoliosTable = &schema.Table{
		Name:       PortfoliosTableName,
		Columns:    PortfoliosColumns,
		PrimaryKey: []*schema.Column{PortfoliosColumns[0]},
	}

	// ResumesColumns holds the columns for the "resumes" table.
	ResumesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "document", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResumesTable holds the schema information for the "resumes" table.
	ResumesTable = &schema.Table{
		Name:       ResumesTableName,
		Columns:    ResumesColumns,
		PrimaryKey: []*schema.Column{ResumesColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PropertiesTable,
		PortfoliosTable,
		ResumesTable,
	}
)
