// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Properties, the ordered string map behind the untyped
// `key: value` lines of a slot, and the well-known keys the core understands.
package model

// PropertyKey names a slot property.
type PropertyKey string

// Well-known structural keys. Any other key passes through verbatim.
const (
	PropComponent PropertyKey = "component"
	PropWidth     PropertyKey = "width"
	PropHeight    PropertyKey = "height"
)

// Properties is an insertion-ordered string map. The zero value is ready to
// use; a nil *Properties behaves as an empty map for all read methods.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set stores value under key. Overwriting keeps the key's original position.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Lookup is Get for a well-known key.
func (p *Properties) Lookup(key PropertyKey) (string, bool) {
	return p.Get(string(key))
}

// Component returns the `component` property.
func (p *Properties) Component() (string, bool) {
	return p.Lookup(PropComponent)
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Map returns a plain copy of the properties.
func (p *Properties) Map() map[string]string {
	out := make(map[string]string, p.Len())
	if p == nil {
		return out
	}
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy.
func (p *Properties) Clone() *Properties {
	c := NewProperties()
	if p == nil {
		return c
	}
	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}
	return c
}

// Merge returns a new map holding p's entries overlaid with child's. Keys
// already present keep their position, new keys are appended in child order.
func (p *Properties) Merge(child *Properties) *Properties {
	out := p.Clone()
	if child == nil {
		return out
	}
	for _, k := range child.keys {
		out.Set(k, child.values[k])
	}
	return out
}
