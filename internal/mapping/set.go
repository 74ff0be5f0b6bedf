// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapping

import "slices"

// Entry pairs a source path with the destination path it is copied to.
type Entry struct {
	Source Path
	Target Path
}

// Collection reports whether the entry replaces collection contents rather
// than assigning a value.
func (e Entry) Collection() bool {
	return e.Source.Collection
}

// Set is a resolved correspondence. Entries keep the enumeration order of the
// source type. A Set is read-only once built and safe for concurrent use.
type Set struct {
	entries []Entry
	index   map[string]int
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in source enumeration order.
func (s *Set) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Lookup returns the entry for the source path name.
func (s *Set) Lookup(source string) (Entry, bool) {
	i, ok := s.index[source]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Apply copies every corresponding attribute from src to dst, which must be
// pointers to the source and destination types the Set was resolved for.
//
// Scalars overwrite the destination value. Collections keep the destination
// container: it is cleared and refilled with the source elements in order.
func (s *Set) Apply(src, dst any) {
	for _, e := range s.entries {
		value := e.Source.get(src)
		if e.Collection() {
			e.Target.replace(dst, value)
			continue
		}
		e.Target.set(dst, value)
	}
}
