package catalog

import (
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// Artifact is the persisted form of the body-typed part of a catalog: for
// every type name and body type, the sorted prefix-qualified variant paths.
type Artifact map[string]map[sprite.BodyType][]string

// BuildArtifact materializes the body-typed slots of c. Definitions that
// declared prefixes but no variants are included with empty lists.
func BuildArtifact(c *Catalog) Artifact {
	a := make(Artifact)

	for name, prefixes := range c.prefixOnly {
		entry := make(map[sprite.BodyType][]string, len(prefixes))
		for bodyType := range prefixes {
			entry[bodyType] = []string{}
		}
		a[name] = entry
	}

	for _, name := range c.slotNames {
		slot := c.slots[name]
		if !slot.IsBodyTyped() {
			continue
		}

		var refs []string
		walkLeaves(slot.root, nil, func(_ []string, leaf *Leaf) bool {
			refs = append(refs, leaf.refs...)
			return true
		})

		entry := make(map[sprite.BodyType][]string, len(slot.prefixes))
		for bodyType, prefix := range slot.prefixes {
			paths := make([]string, 0, len(refs))
			for _, ref := range refs {
				paths = append(paths, prefix+ref)
			}
			sort.Strings(paths)
			entry[bodyType] = slices.Compact(paths)
		}
		a[name] = entry
	}

	return a
}

// WriteArtifact encodes a as indented JSON
func WriteArtifact(w io.Writer, a Artifact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return errors.Wrap(err, "failed to encode catalog artifact")
	}
	return nil
}

// ReadArtifact decodes an artifact written by WriteArtifact
func ReadArtifact(r io.Reader) (Artifact, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog artifact")
	}
	return a, nil
}

// artifactPrefix returns the directory of the shortest path. References may
// themselves contain slashes, so the prefix is the deepest directory every
// reference can share.
func artifactPrefix(paths []string) string {
	shortest := paths[0]
	for _, p := range paths[1:] {
		if strings.Count(p, "/") < strings.Count(shortest, "/") {
			shortest = p
		}
	}
	return shortest[:strings.LastIndex(shortest, "/")+1]
}

// FromArtifact rebuilds a catalog from a persisted artifact without the raw
// sources. Every slot gets the given animations; no parameter records or
// color families survive the round trip.
func FromArtifact(a Artifact, animations []string) (*Catalog, error) {
	c := &Catalog{
		slots:      make(map[string]*Slot),
		animations: slices.Clone(animations),
		paramIndex: make(map[string]map[string]int),
		prefixOnly: make(map[string]map[sprite.BodyType]string),
	}

	for name, entry := range a {
		prefixes := make(map[sprite.BodyType]string, len(entry))
		root := newInternal()
		for bodyType, paths := range entry {
			if !bodyType.IsValid() {
				return nil, errors.InvalidArgumentf("artifact entry %q has unknown body type %q", name, bodyType).
					WithMeta(MetaSlot, name)
			}
			if len(paths) == 0 {
				continue
			}
			prefix := artifactPrefix(paths)
			for _, p := range paths {
				ref, ok := strings.CutPrefix(p, prefix)
				if !ok {
					return nil, errors.InvalidArgumentf("artifact entry %q mixes prefixes for %s", name, bodyType).
						WithMeta(MetaSlot, name)
				}
				if ref != "" {
					root.mergeLeaf(ref, ref)
				}
			}
			prefixes[bodyType] = prefix
		}

		if root.Len() == 0 {
			if len(prefixes) > 0 {
				c.prefixOnly[name] = prefixes
			}
			continue
		}
		if len(prefixes) != len(sprite.BodyTypes) {
			return nil, errors.InvalidArgumentf("artifact entry %q does not cover every body type", name).
				WithMeta(MetaSlot, name)
		}
		c.slots[name] = &Slot{
			name:       name,
			root:       root,
			prefixes:   prefixes,
			animations: slices.Clone(animations),
		}
		c.slotNames = append(c.slotNames, name)
	}

	if len(c.slots) == 0 {
		return nil, NoSelectableOptions()
	}
	sort.Strings(c.slotNames)

	return c, nil
}
