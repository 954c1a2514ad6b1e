package catalog

import (
	"slices"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

// BuildParameterIndex groups every parameter record by slot name. Records
// keep their declaration order within a slot and carry the slot's supported
// animations. The result is a copy; callers may modify it freely.
func BuildParameterIndex(c *Catalog) map[string][]sprite.ParameterRecord {
	index := make(map[string][]sprite.ParameterRecord, len(c.slotNames))
	for _, p := range c.params {
		p.SupportedAnimations = slices.Clone(p.SupportedAnimations)
		index[p.Slot] = append(index[p.Slot], p)
	}
	return index
}

// Parameters returns the records declared for one slot
func (c *Catalog) Parameters(slot string) []sprite.ParameterRecord {
	var records []sprite.ParameterRecord
	for _, p := range c.params {
		if p.Slot == slot {
			p.SupportedAnimations = slices.Clone(p.SupportedAnimations)
			records = append(records, p)
		}
	}
	return records
}
