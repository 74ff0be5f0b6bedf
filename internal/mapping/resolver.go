// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapping

import "strings"

// CollectionSuffix is the token a repeated source attribute may carry that
// its destination counterpart omits ("roleList" -> "role").
const CollectionSuffix = "List"

// Resolve computes the correspondence between the source paths src and the
// destination paths dst.
//
// For every source path the candidate names are tried in order: the path's
// own name, then, for collections, the name without [CollectionSuffix]. The
// first candidate matched by exactly one qualifying destination path wins.
// When no candidate has a unique match the source path is left out of the
// result; ambiguity is never reported as an error.
//
// A destination path qualifies for a scalar source when it is mutable and
// declares the same value type. It qualifies for a collection source when it
// is a collection of the same element type; mutability is not required
// because collections are refilled in place.
func Resolve(src, dst []Path) *Set {
	set := &Set{index: make(map[string]int, len(src))}

	for _, p := range src {
		if _, seen := set.index[p.Name]; seen {
			continue
		}

		for _, name := range candidateNames(p) {
			target, ok := uniqueTarget(p, name, dst)
			if !ok {
				continue
			}

			set.index[p.Name] = len(set.entries)
			set.entries = append(set.entries, Entry{Source: p, Target: target})
			break
		}
	}

	return set
}

func candidateNames(p Path) []string {
	names := []string{p.Name}
	if !p.Collection {
		return names
	}

	base, ok := strings.CutSuffix(p.Name, CollectionSuffix)
	if !ok || base == "" || strings.HasSuffix(base, ".") {
		return names
	}

	return append(names, base)
}

func uniqueTarget(src Path, name string, dst []Path) (Path, bool) {
	var (
		target  Path
		matches int
	)

	for _, d := range dst {
		if d.Name != name || !qualifies(src, d) {
			continue
		}

		matches++
		if matches > 1 {
			return Path{}, false
		}
		target = d
	}

	return target, matches == 1
}

func qualifies(src, dst Path) bool {
	if src.Collection {
		return dst.Collection && dst.replace != nil && src.ElemType == dst.ElemType
	}

	return dst.Mutable && dst.set != nil && src.ValueType == dst.ValueType
}
