// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapping copies attribute values between two record types that do
// not share a schema definition.
//
// A participating type implements [Describable]: its pointer type returns the
// list of attributes it exposes (name, accessor, optional mutator, collection
// or composite kind). From those lists the package
//
//   - enumerates every addressable attribute path of a type ([Enumerate]),
//     descending into composite attributes;
//   - resolves a correspondence between a source and a destination path set
//     ([Resolve]), accepting a pair only when exactly one destination path
//     qualifies and silently dropping the source path otherwise;
//   - applies the correspondence to concrete values ([Set.Apply]), assigning
//     scalars and replacing collection contents in place.
//
// Correspondences are computed once per (source, destination) type pair and
// cached for the lifetime of the process ([For]).
package mapping
