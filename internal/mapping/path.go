// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapping

import (
	"reflect"
	"slices"
)

// Path is one addressable attribute of a record type as produced by
// [Enumerate]. Nested attributes use dotted names ("endpoints.token").
// A Path is immutable once enumerated.
type Path struct {
	// Owner is the record type the path was enumerated from.
	Owner reflect.Type
	// Name is the dotted attribute path.
	Name string
	// ValueType is the declared type of the attribute value.
	ValueType reflect.Type
	// ElemType is the element type of a collection attribute, nil otherwise.
	ElemType reflect.Type
	// Collection reports whether the attribute holds repeated values.
	Collection bool
	// Mutable reports whether a mutator exists for the attribute.
	Mutable bool

	get     func(rec any) any
	set     func(rec, v any)
	replace func(rec, values any)
}

// String returns the owner-qualified path, e.g. "rpc.Context.domain".
func (p Path) String() string {
	if p.Owner == nil {
		return p.Name
	}
	return p.Owner.String() + "." + p.Name
}

// Enumerate returns every attribute path reachable from T, composite paths
// included, in declaration order with each composite followed by its
// children. Walking stops at a type already being walked, so recursive types
// enumerate each level once.
//
// The result depends only on the shape T declares, which makes it safe to
// cache.
func Enumerate[T any, PT Describable[T]]() []Path {
	owner := reflect.TypeFor[T]()
	return walk(owner, PT(new(T)).Attributes(), "", self, []reflect.Type{owner})
}

func self(rec any) any {
	return rec
}

func walk(owner reflect.Type, attrs []Attribute, prefix string, at func(any) any, visiting []reflect.Type) []Path {
	paths := make([]Path, 0, len(attrs))

	for _, a := range attrs {
		p := Path{
			Owner:      owner,
			Name:       prefix + a.name,
			ValueType:  a.valueType,
			ElemType:   a.elemType,
			Collection: a.kind == kindRepeated,
		}

		get := a.get
		p.get = func(rec any) any {
			return get(at(rec))
		}

		if set := a.set; set != nil && a.kind != kindNested {
			p.Mutable = true
			p.set = func(rec, v any) {
				set(at(rec), v)
			}
		}

		if replace := a.replace; replace != nil {
			p.replace = func(rec, values any) {
				replace(at(rec), values)
			}
		}

		paths = append(paths, p)

		if a.kind != kindNested {
			continue
		}

		typ, children := a.nested()
		if slices.Contains(visiting, typ) {
			continue
		}
		paths = append(paths, walk(owner, children, p.Name+".", p.get, append(slices.Clip(visiting), typ))...)
	}

	return paths
}
