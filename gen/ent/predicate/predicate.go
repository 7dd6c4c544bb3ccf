// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionError is the predicate function for extractionerror builders.
type ExtractionError func(*sql.Selector)

// Resume is the predicate function for resume builders.
type Resume func(*sql.Selector)
