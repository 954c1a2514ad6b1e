// Package catalog normalizes raw equipment definitions and the options
// document into an immutable catalog of slots, and resolves or samples
// character configurations against it.
//
// A Catalog is built once and never mutated afterwards, so it can be shared
// by any number of goroutines without locking.
package catalog

import (
	"slices"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

// Catalog is the canonical, read-only view of every selectable slot
type Catalog struct {
	slots      map[string]*Slot
	slotNames  []string
	animations []string
	params     []sprite.ParameterRecord
	paramIndex map[string]map[string]int

	// body-typed definitions without any variant, kept for the artifact
	prefixOnly map[string]map[sprite.BodyType]string
}

// Slot is one customization axis and its selection tree
type Slot struct {
	name          string
	root          *Internal
	prefixes      map[sprite.BodyType]string
	animations    []string
	colorFamilies map[string]string
}

// Slot returns the named slot
func (c *Catalog) Slot(name string) (*Slot, bool) {
	s, ok := c.slots[name]
	return s, ok
}

// SlotNames returns every slot name in sorted order
func (c *Catalog) SlotNames() []string {
	return slices.Clone(c.slotNames)
}

// Animations returns the global default animation list
func (c *Catalog) Animations() []string {
	return slices.Clone(c.animations)
}

// BodyTypes returns the body types configurations can be resolved for
func (c *Catalog) BodyTypes() []sprite.BodyType {
	return slices.Clone(sprite.BodyTypes)
}

// parameterFor finds the first declared record for key in slot
func (c *Catalog) parameterFor(slot, key string) (sprite.ParameterRecord, bool) {
	i, ok := c.paramIndex[slot][key]
	if !ok {
		return sprite.ParameterRecord{}, false
	}
	return c.params[i], true
}

// Name returns the slot name
func (s *Slot) Name() string {
	return s.name
}

// Root returns the top of the slot's selection tree
func (s *Slot) Root() *Internal {
	return s.root
}

// IsBodyTyped reports whether the slot's assets live under per-body-type prefixes
func (s *Slot) IsBodyTyped() bool {
	return len(s.prefixes) > 0
}

// Prefix returns the asset prefix for a body type
func (s *Slot) Prefix(bodyType sprite.BodyType) (string, bool) {
	p, ok := s.prefixes[bodyType]
	return p, ok
}

// Animations returns the animations every part in the slot supports
func (s *Slot) Animations() []string {
	return slices.Clone(s.animations)
}

// SupportsAnimation reports whether the slot supports animation
func (s *Slot) SupportsAnimation(animation string) bool {
	return slices.Contains(s.animations, animation)
}

// ColorFamily returns the color family of a variant (or body color) within
// the slot. Untagged names are their own family.
func (s *Slot) ColorFamily(name string) string {
	if family, ok := s.colorFamilies[name]; ok {
		return family
	}
	return name
}

// assetPath joins a terminal reference with the body type prefix when the
// slot is body-typed.
func (s *Slot) assetPath(bodyType sprite.BodyType, ref string) (string, bool) {
	if !s.IsBodyTyped() {
		return ref, true
	}
	prefix, ok := s.prefixes[bodyType]
	if !ok {
		return "", false
	}
	return prefix + ref, true
}
