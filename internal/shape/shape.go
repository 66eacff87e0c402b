// Package shape caches the reflect-level field layout of struct types so
// the default reflection codec doesn't repeat reflect.VisibleFields on
// every Marshal/Unmarshal call for the same type.
//
// Types are keyed by the xxHash of their fully qualified name (package
// path plus name), the same ID scheme internal/hash uses elsewhere in
// this module.
package shape

import (
	"reflect"
	"sync"

	"github.com/hrektts/go-cdr/internal/hash"
)

// Field describes one struct field that participates in CDR encoding:
// its index path (for reflect.Value.FieldByIndex) and its Go name. Fields
// that are skipped are left out of the Plan entirely.
type Field struct {
	Index []int
	Name  string
}

// Plan is the cached field-walk order for one struct type.
type Plan struct {
	Fields []Field
}

var cache sync.Map // map[uint64]*Plan

// Of returns the cached Plan for t, building and caching one on first
// use. t must be a struct type; callers are expected to have already
// dereferenced any pointer.
func Of(t reflect.Type) *Plan {
	key := hash.ID(t.PkgPath() + "." + t.Name())
	if t.Name() == "" {
		// Anonymous struct types have no name; fall back to their
		// String() form so distinct anonymous shapes don't collide.
		key = hash.ID(t.String())
	}

	if v, ok := cache.Load(key); ok {
		return v.(*Plan)
	}

	p := build(t)
	actual, _ := cache.LoadOrStore(key, p)

	return actual.(*Plan)
}

func build(t reflect.Type) *Plan {
	fields := make([]Field, 0, t.NumField())
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || len(f.Index) > 1 {
			// Skip unexported fields and fields promoted from embedded
			// structs beyond the first level; CDR struct layout is a
			// flat concatenation of the declared fields in order.
			continue
		}
		if tag, ok := f.Tag.Lookup("cdr"); ok && tag == "-" {
			continue
		}

		fields = append(fields, Field{Index: f.Index, Name: f.Name})
	}

	return &Plan{Fields: fields}
}
