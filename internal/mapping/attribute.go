// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapping

import (
	"reflect"
	"slices"
)

// Describable is the constraint satisfied by pointer types whose element type
// takes part in structural mapping.
//
// Attributes describes the type, not the instance: it must return the same
// list for every receiver, including a freshly allocated zero value, and must
// not read receiver state.
type Describable[T any] interface {
	*T
	Attributes() []Attribute
}

type attributeKind int

const (
	kindScalar attributeKind = iota
	kindRepeated
	kindNested
)

// Attribute declares one attribute of a record type. Values are created with
// [Scalar], [Repeated] and [Nested]; the zero value is not usable.
type Attribute struct {
	name      string
	kind      attributeKind
	valueType reflect.Type
	elemType  reflect.Type

	get     func(rec any) any
	set     func(rec, v any)
	replace func(rec, values any)
	nested  func() (reflect.Type, []Attribute)
}

// Name returns the attribute name as declared by the owning type.
func (a Attribute) Name() string {
	return a.name
}

// Scalar declares a single-valued attribute of T with value type V.
// A nil set marks the attribute read-only.
func Scalar[T, V any](name string, get func(*T) V, set func(*T, V)) Attribute {
	a := Attribute{
		name:      name,
		kind:      kindScalar,
		valueType: reflect.TypeFor[V](),
		get: func(rec any) any {
			return get(rec.(*T))
		},
	}
	if set != nil {
		a.set = func(rec, v any) {
			value, _ := v.(V)
			set(rec.(*T), value)
		}
	}

	return a
}

// Repeated declares a collection attribute of T holding elements of type E.
//
// container must return the address of the slice that holds the values; the
// copier clears and refills that slice in place and never calls set. A nil
// set only marks the attribute as not reassignable.
func Repeated[T, E any](name string, container func(*T) *[]E, set func(*T, []E)) Attribute {
	a := Attribute{
		name:      name,
		kind:      kindRepeated,
		valueType: reflect.TypeFor[[]E](),
		elemType:  reflect.TypeFor[E](),
		get: func(rec any) any {
			return *container(rec.(*T))
		},
		replace: func(rec, values any) {
			src, _ := values.([]E)
			// src may alias the destination container
			src = slices.Clone(src)

			dst := container(rec.(*T))
			clear(*dst)
			*dst = append((*dst)[:0], src...)
		},
	}
	if set != nil {
		a.set = func(rec, v any) {
			value, _ := v.([]E)
			set(rec.(*T), value)
		}
	}

	return a
}

// Nested declares a composite attribute of T whose value is itself a
// describable record of type N. get must never return nil; records that keep
// the value behind an optional pointer return a default instance instead.
//
// The composite path is read-only. Its own attributes are enumerated under
// "<name>." and are assigned through the pointer returned by get.
func Nested[T, N any, PN Describable[N]](name string, get func(*T) *N) Attribute {
	return Attribute{
		name:      name,
		kind:      kindNested,
		valueType: reflect.TypeFor[*N](),
		get: func(rec any) any {
			return get(rec.(*T))
		},
		nested: func() (reflect.Type, []Attribute) {
			return reflect.TypeFor[N](), PN(new(N)).Attributes()
		},
	}
}
