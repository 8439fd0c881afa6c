// Package content maps loosely typed write payloads onto storable record
// bodies. Each entity type has a Schema: an explicit table of its fields,
// their storage columns, kinds and defaults, plus the ordering its listings
// use.
package content

import "strings"

// Kind is the storage shape of a field.
type Kind int

const (
	Text Kind = iota
	List
	Flag
	Number
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case List:
		return "list"
	case Flag:
		return "flag"
	case Number:
		return "number"
	default:
		return "unknown"
	}
}

// Field is one row of a schema's mapping table.
type Field struct {
	Key    string // JSON key in payloads and responses
	Column string
	Kind   Kind
	// Default is only consulted for Flag fields; every other kind defaults
	// to its zero value.
	Default bool
}

// SortKey is one term of a listing's ORDER BY.
// Text keys take the store's byte-order collation when one is given.
type SortKey struct {
	Column string
	Desc   bool
	Text   bool
}

func (k SortKey) String() string {
	return k.collated("")
}

func (k SortKey) collated(collation string) string {
	col := k.Column
	if k.Text && collation != "" {
		col += " COLLATE " + collation
	}
	if k.Desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// Schema describes one entity type.
type Schema struct {
	Entity string // singular, used in messages
	Table  string
	Fields []Field
	Order  []SortKey
}

// Identity and timestamp columns. They never appear in Fields: the store
// assigns them and no payload may set them.
const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
)

// Columns returns every column of the table in scan order: id, created_at,
// updated_at, then the fields in table order.
func (s *Schema) Columns() []string {
	cols := make([]string, 0, len(s.Fields)+3)
	cols = append(cols, ColumnID, ColumnCreatedAt, ColumnUpdatedAt)
	for _, f := range s.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// Field returns the field stored in column.
func (s *Schema) Field(column string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// HasColumn reports whether the schema stores column.
func (s *Schema) HasColumn(column string) bool {
	_, ok := s.Field(column)
	return ok
}

// OrderBy renders the listing policy as ORDER BY terms, with id as the final
// tiebreak so equal rows always come back in the same sequence.
func (s *Schema) OrderBy() []string {
	return s.OrderByCollate("")
}

// OrderByCollate is OrderBy with text keys compared under collation, so
// engines whose default text order follows a locale sort like SQLite's
// BINARY.
func (s *Schema) OrderByCollate(collation string) []string {
	terms := make([]string, 0, len(s.Order)+1)
	for _, k := range s.Order {
		terms = append(terms, k.collated(collation))
	}
	return append(terms, SortKey{Column: ColumnID, Text: true}.collated(collation))
}

// columnName converts a camelCase key to its snake_case column.
func columnName(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
