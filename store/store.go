// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// Store issues the API's SQL statements against a shared connection pool.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Field binds a column to the struct field it is read into and written from.
// database/sql dereferences pointer arguments, so the same Ptr serves as a
// query argument and as a Scan destination.
type Field struct {
	Name string
	Ptr  any
}

func columns(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

// qualified prefixes each column with a table alias.
func qualified(alias string, fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = alias + "." + f.Name
	}
	return strings.Join(names, ", ")
}

func pointers(fields []Field) []any {
	ptrs := make([]any, len(fields))
	for i, f := range fields {
		ptrs[i] = f.Ptr
	}
	return ptrs
}

// placeholders returns "$start, $start+1, ..." for n parameters.
func placeholders(start, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ps, ", ")
}

// assignments returns "a = $start, b = $start+1, ..." for an UPDATE.
func assignments(start int, fields []Field) string {
	sets := make([]string, len(fields))
	for i, f := range fields {
		sets[i] = fmt.Sprintf("%s = $%d", f.Name, start+i)
	}
	return strings.Join(sets, ", ")
}

func concat(groups ...[]Field) []Field {
	var out []Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func without(fields []Field, name string) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Name != name {
			out = append(out, f)
		}
	}
	return out
}
