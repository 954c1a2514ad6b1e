package catalog

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

const (
	fieldTypeName      = "type_name"
	fieldVariants      = "variants"
	fieldAnimations    = "animations"
	fieldColorFamilies = "color_families"

	controlTypeRadio     = "radio"
	controlTypeCheckbox  = "checkbox"
	animationControlName = "animation"
	animationIDPrefix    = "animation-"
	layerPrefix          = "layer_"
)

// nonLayerFields are definition keys that never hold body type asset paths
var nonLayerFields = map[string]bool{
	fieldTypeName:      true,
	fieldVariants:      true,
	fieldAnimations:    true,
	fieldColorFamilies: true,
}

// BuildReport describes what a build skipped or overrode
type BuildReport struct {
	// Skipped lists definitions that were not structured data
	Skipped []SkippedDefinition
	// Duplicates lists type names declared by more than one definition; the
	// last definition read wins.
	Duplicates []string
	// Declarations counts the selectable controls kept from the document
	Declarations int
	// DiscardedControls counts controls that were not catalog data
	DiscardedControls int
	// EmptySlots lists slots that ended up without any variant
	EmptySlots []string
}

// SkippedDefinition is a definition record the build could not read
type SkippedDefinition struct {
	Source string
	Err    error
}

type definition struct {
	source        string
	typeName      string
	prefixes      map[sprite.BodyType]string
	variants      *Internal
	animations    []string
	colorFamilies map[string]string
}

// Build normalizes the definition records and the document controls into a
// catalog. Both sources are parsed completely before they are merged, since
// the default animation list comes from the document. Malformed definitions
// are logged and skipped; a build without any selectable slot fails with
// NoSelectableOptions.
func Build(defs []RawDefinition, controls []RawControl) (*Catalog, *BuildReport, error) {
	report := &BuildReport{}

	parsed := make(map[string]*definition)
	var typeOrder []string
	for _, raw := range defs {
		def, err := parseDefinition(raw)
		if err != nil {
			slog.Warn("Skipping malformed definition", "source", raw.Source, "error", err)
			report.Skipped = append(report.Skipped, SkippedDefinition{Source: raw.Source, Err: err})
			continue
		}
		if def.typeName == "" {
			continue
		}
		if previous, seen := parsed[def.typeName]; seen {
			slog.Warn("Definition overrides an earlier one",
				"type_name", def.typeName,
				"source", raw.Source,
				"previous_source", previous.source,
			)
			report.Duplicates = append(report.Duplicates, def.typeName)
		} else {
			typeOrder = append(typeOrder, def.typeName)
		}
		parsed[def.typeName] = def
	}

	decls, globalAnimations, discarded := parseControls(controls)
	report.Declarations = len(decls)
	report.DiscardedControls = discarded

	c := &Catalog{
		slots:      make(map[string]*Slot),
		animations: globalAnimations,
		paramIndex: make(map[string]map[string]int),
		prefixOnly: make(map[string]map[sprite.BodyType]string),
	}

	for _, name := range typeOrder {
		def := parsed[name]
		root := def.variants
		if root == nil {
			root = newInternal()
		}
		c.slots[name] = &Slot{
			name:          name,
			root:          root,
			prefixes:      def.prefixes,
			colorFamilies: def.colorFamilies,
		}
	}

	for _, d := range decls {
		slot, ok := c.slots[d.Slot]
		if !ok {
			slot = &Slot{name: d.Slot, root: newInternal()}
			c.slots[d.Slot] = slot
		}
		ref := d.Key()
		if d.Variant != "" && d.Value != "" {
			ref = d.Value
		}
		slot.root.mergeLeaf(d.Key(), ref)
	}

	for name, slot := range c.slots {
		if def, ok := parsed[name]; ok && len(def.animations) > 0 {
			slot.animations = slices.Clone(def.animations)
		} else {
			slot.animations = slices.Clone(globalAnimations)
		}
		if slot.root.Len() == 0 {
			if slot.IsBodyTyped() {
				c.prefixOnly[name] = slot.prefixes
			}
			report.EmptySlots = append(report.EmptySlots, name)
			delete(c.slots, name)
		}
	}
	sort.Strings(report.EmptySlots)

	if len(c.slots) == 0 {
		return nil, report, NoSelectableOptions()
	}

	for name := range c.slots {
		c.slotNames = append(c.slotNames, name)
	}
	sort.Strings(c.slotNames)

	c.params = make([]sprite.ParameterRecord, len(decls))
	for i, d := range decls {
		d.SupportedAnimations = c.slots[d.Slot].Animations()
		c.params[i] = d
		keys, ok := c.paramIndex[d.Slot]
		if !ok {
			keys = make(map[string]int)
			c.paramIndex[d.Slot] = keys
		}
		if _, exists := keys[d.Key()]; !exists {
			keys[d.Key()] = i
		}
	}

	slog.Info("Catalog built",
		"slots", len(c.slotNames),
		"parameters", len(c.params),
		"animations", len(c.animations),
		"skipped_definitions", len(report.Skipped),
	)

	return c, report, nil
}

func parseDefinition(raw RawDefinition) (*definition, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw.Data, &fields); err != nil {
		return nil, MalformedDefinition(raw.Source, err)
	}
	if fields == nil {
		return nil, MalformedDefinition(raw.Source, fmt.Errorf("definition is not an object"))
	}

	def := &definition{source: raw.Source}

	if v, ok := fields[fieldTypeName]; ok {
		if err := json.Unmarshal(v, &def.typeName); err != nil {
			return nil, MalformedDefinition(raw.Source, fmt.Errorf("type_name: %w", err))
		}
		def.typeName = strings.TrimSpace(def.typeName)
	}

	def.prefixes = bodyTypePrefixes(fields)

	if v, ok := fields[fieldVariants]; ok {
		root, err := decodeVariants(v)
		if err != nil {
			return nil, MalformedDefinition(raw.Source, fmt.Errorf("variants: %w", err))
		}
		def.variants = root
	}

	if v, ok := fields[fieldAnimations]; ok {
		if err := json.Unmarshal(v, &def.animations); err != nil {
			return nil, MalformedDefinition(raw.Source, fmt.Errorf("animations: %w", err))
		}
	}

	if v, ok := fields[fieldColorFamilies]; ok {
		var families map[string][]string
		if err := json.Unmarshal(v, &families); err != nil {
			return nil, MalformedDefinition(raw.Source, fmt.Errorf("color_families: %w", err))
		}
		def.colorFamilies = make(map[string]string)
		for family, variants := range families {
			for _, variant := range variants {
				def.colorFamilies[variant] = family
			}
		}
	}

	return def, nil
}

// bodyTypePrefixes looks for the first layer that names an asset path for
// every body type and returns each path without its last segment. Records
// missing any body type yield nil.
func bodyTypePrefixes(fields map[string]json.RawMessage) map[sprite.BodyType]string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if !nonLayerFields[name] {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return layerLess(names[i], names[j]) })

	for _, name := range names {
		var layer map[string]json.RawMessage
		if err := json.Unmarshal(fields[name], &layer); err != nil || layer == nil {
			continue
		}

		prefixes := make(map[sprite.BodyType]string, len(sprite.BodyTypes))
		for _, bodyType := range sprite.BodyTypes {
			var path *string
			v, ok := layer[string(bodyType)]
			if !ok || json.Unmarshal(v, &path) != nil || path == nil {
				prefixes = nil
				break
			}
			prefixes[bodyType] = trimLastSegment(*path)
		}
		if prefixes != nil {
			return prefixes
		}
	}

	return nil
}

// layerLess orders layer_N keys numerically ahead of any other key
func layerLess(a, b string) bool {
	na, okA := layerNumber(a)
	nb, okB := layerNumber(b)
	switch {
	case okA && okB && na != nb:
		return na < nb
	case okA && !okB:
		return true
	case !okA && okB:
		return false
	}
	return a < b
}

func layerNumber(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, layerPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	return n, err == nil
}

// trimLastSegment keeps everything up to and including the last slash
func trimLastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i+1]
	}
	return path + "/"
}

// decodeVariants accepts either a flat list of variant names or a nested
// object whose string and string-list values are leaves.
func decodeVariants(raw json.RawMessage) (*Internal, error) {
	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		root := newInternal()
		for _, variant := range flat {
			if variant = strings.TrimSpace(variant); variant != "" {
				root.mergeLeaf(variant, variant)
			}
		}
		return root, nil
	}
	return decodeInternal(raw)
}

func decodeInternal(raw json.RawMessage) (*Internal, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("expected a list of names or an object: %w", err)
	}

	n := newInternal()
	for key, value := range fields {
		child, err := decodeNode(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if child != nil {
			n.set(key, child)
		}
	}
	return n, nil
}

func decodeNode(raw json.RawMessage) (Node, error) {
	var ref string
	if err := json.Unmarshal(raw, &ref); err == nil {
		if ref == "" {
			return nil, nil
		}
		return newLeaf(ref), nil
	}

	var refs []string
	if err := json.Unmarshal(raw, &refs); err == nil {
		leaf := newLeaf(refs...)
		if leaf.Len() == 0 {
			return nil, nil
		}
		return leaf, nil
	}

	child, err := decodeInternal(raw)
	if err != nil {
		return nil, err
	}
	if child.Len() == 0 {
		return nil, nil
	}
	return child, nil
}

// parseControls keeps single-choice controls that name a slot and a variant
// or value, and harvests the animation checkboxes in document order.
func parseControls(controls []RawControl) ([]sprite.ParameterRecord, []string, int) {
	var (
		decls      []sprite.ParameterRecord
		animations []string
		discarded  int
	)

	for _, ctl := range controls {
		name := ctl.attr("name")
		switch strings.ToLower(ctl.attr("type")) {
		case controlTypeCheckbox:
			if id := ctl.attr("id"); name == animationControlName && id != "" {
				animation := strings.TrimPrefix(id, animationIDPrefix)
				if !slices.Contains(animations, animation) {
					animations = append(animations, animation)
				}
				continue
			}
		case controlTypeRadio:
			variant, value := ctl.attr("variant"), ctl.attr("value")
			if name != "" && (variant != "" || value != "") {
				decls = append(decls, sprite.ParameterRecord{
					Slot:           name,
					ID:             ctl.attr("id"),
					ParentName:     ctl.attr("parentname"),
					Variant:        variant,
					Value:          value,
					MatchBodyColor: ctl.flag("matchbodycolor"),
				})
				continue
			}
		}
		discarded++
	}

	return decls, animations, discarded
}
