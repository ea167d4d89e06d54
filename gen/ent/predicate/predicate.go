// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Boleto is the predicate function for boleto builders.
type Boleto func(*sql.Selector)

// BoletoFile is the predicate function for boletofile builders.
type BoletoFile func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)
