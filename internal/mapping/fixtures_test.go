// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapping

type endpoints struct {
	Token  string
	Logout string
}

func (*endpoints) Attributes() []Attribute {
	return []Attribute{
		Scalar("token", func(e *endpoints) string { return e.Token }, func(e *endpoints, v string) { e.Token = v }),
		Scalar("logout", func(e *endpoints) string { return e.Logout }, func(e *endpoints, v string) { e.Logout = v }),
	}
}

// contextRecord mimics a wire message: repeated fields carry the List suffix.
type contextRecord struct {
	Domain      string
	NonceMaxAge int32
	Version     string
	RoleList    []string
	Endpoints   endpoints
}

func (*contextRecord) Attributes() []Attribute {
	return []Attribute{
		Scalar("domain", func(c *contextRecord) string { return c.Domain }, func(c *contextRecord, v string) { c.Domain = v }),
		Scalar("nonceMaxAge", func(c *contextRecord) int32 { return c.NonceMaxAge }, func(c *contextRecord, v int32) { c.NonceMaxAge = v }),
		Scalar("version", func(c *contextRecord) string { return c.Version }, func(c *contextRecord, v string) { c.Version = v }),
		Repeated("roleList", func(c *contextRecord) *[]string { return &c.RoleList }, func(c *contextRecord, v []string) { c.RoleList = v }),
		Nested("endpoints", func(c *contextRecord) *endpoints { return &c.Endpoints }),
	}
}

// settings is the local shape: read-only version, collection without setter.
type settings struct {
	Domain      string
	NonceMaxAge int32
	Version     string
	Role        []string
	Endpoints   endpoints
}

func (*settings) Attributes() []Attribute {
	return []Attribute{
		Scalar("domain", func(s *settings) string { return s.Domain }, func(s *settings, v string) { s.Domain = v }),
		Scalar("nonceMaxAge", func(s *settings) int32 { return s.NonceMaxAge }, func(s *settings, v int32) { s.NonceMaxAge = v }),
		Scalar("version", func(s *settings) string { return s.Version }, nil),
		Repeated("role", func(s *settings) *[]string { return &s.Role }, nil),
		Nested("endpoints", func(s *settings) *endpoints { return &s.Endpoints }),
	}
}

// twins declares "domain" twice, which makes every match on it ambiguous.
type twins struct {
	A, B string
}

func (*twins) Attributes() []Attribute {
	return []Attribute{
		Scalar("domain", func(t *twins) string { return t.A }, func(t *twins, v string) { t.A = v }),
		Scalar("domain", func(t *twins) string { return t.B }, func(t *twins, v string) { t.B = v }),
	}
}

// widened declares nonceMaxAge with a different value type.
type widened struct {
	NonceMaxAge int64
	Domain      string
}

func (*widened) Attributes() []Attribute {
	return []Attribute{
		Scalar("nonceMaxAge", func(w *widened) int64 { return w.NonceMaxAge }, func(w *widened, v int64) { w.NonceMaxAge = v }),
		Scalar("domain", func(w *widened) string { return w.Domain }, func(w *widened, v string) { w.Domain = v }),
	}
}

// tagged has a repeated source attribute whose full name also exists on the
// destination.
type tagged struct {
	TagList []string
}

func (*tagged) Attributes() []Attribute {
	return []Attribute{
		Repeated("tagList", func(t *tagged) *[]string { return &t.TagList }, nil),
	}
}

type tagTarget struct {
	TagList []string
	Tag     []string
}

func (*tagTarget) Attributes() []Attribute {
	return []Attribute{
		Repeated("tagList", func(t *tagTarget) *[]string { return &t.TagList }, nil),
		Repeated("tag", func(t *tagTarget) *[]string { return &t.Tag }, nil),
	}
}

type node struct {
	Name string
	Next *node
}

func (*node) Attributes() []Attribute {
	return []Attribute{
		Scalar("name", func(n *node) string { return n.Name }, func(n *node, v string) { n.Name = v }),
		Nested("next", func(n *node) *node { return n.Next }),
	}
}

func pathNames(paths []Path) []string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, p.Name)
	}
	return names
}
