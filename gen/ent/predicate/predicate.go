// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Clause is the predicate function for clause builders.
type Clause func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)
