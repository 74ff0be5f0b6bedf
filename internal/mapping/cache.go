// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapping

import (
	"reflect"
	"sync"
)

// Mapper is the typed view of a [Set] resolved from S to D.
type Mapper[S, D any] struct {
	set *Set
}

// NewMapper resolves the correspondence from S to D without consulting the
// process-wide cache.
func NewMapper[S, D any, PS Describable[S], PD Describable[D]]() *Mapper[S, D] {
	return &Mapper[S, D]{
		set: Resolve(Enumerate[S, PS](), Enumerate[D, PD]()),
	}
}

// Set returns the underlying correspondence.
func (m *Mapper[S, D]) Set() *Set {
	return m.set
}

// Map copies src into dst.
func (m *Mapper[S, D]) Map(src *S, dst *D) {
	m.set.Apply(src, dst)
}

type pairKey struct {
	src, dst reflect.Type
}

// registry holds one lazily built mapper per type pair for the lifetime of
// the process.
var registry sync.Map // pairKey -> func() any

// For returns the process-wide mapper from S to D. The first call for a type
// pair resolves the correspondence; concurrent first calls share that single
// computation and later calls only read.
func For[S, D any, PS Describable[S], PD Describable[D]]() *Mapper[S, D] {
	key := pairKey{src: reflect.TypeFor[S](), dst: reflect.TypeFor[D]()}

	build, ok := registry.Load(key)
	if !ok {
		build, _ = registry.LoadOrStore(key, sync.OnceValue(func() any {
			return NewMapper[S, D, PS, PD]()
		}))
	}

	return build.(func() any)().(*Mapper[S, D])
}
