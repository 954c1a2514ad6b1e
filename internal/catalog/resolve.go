package catalog

import (
	"slices"
	"sort"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// Selections maps a slot name to a selection path: either a single terminal
// identifier or the keys to follow down the slot's tree. A single identifier
// that is not a root key must name exactly one asset in the slot.
type Selections map[string][]string

// ResolveInput is a partial or sampled character configuration
type ResolveInput struct {
	BodyType   sprite.BodyType
	BodyColor  string
	Animations []string
	Selections Selections
}

// Resolve validates the selections against the catalog and returns the flat
// configuration a compositor consumes. Slots without a selection are left
// unequipped. Slots are checked in sorted order and the first failure is
// returned; no partial configuration is ever produced.
func Resolve(c *Catalog, input *ResolveInput) (*sprite.Configuration, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.BodyType.IsValid() {
		return nil, errors.InvalidArgumentf("invalid body type %q", input.BodyType).
			WithMeta("body_type", string(input.BodyType))
	}

	bodyColor := input.BodyColor
	if bodyColor == "" {
		bodyColor = sprite.DefaultBodyColor
	}

	slots := make([]string, 0, len(input.Selections))
	for name, path := range input.Selections {
		if len(path) > 0 {
			slots = append(slots, name)
		}
	}
	sort.Strings(slots)

	equipment := make(map[string]string, len(slots))
	for _, name := range slots {
		path := input.Selections[name]

		slot, ok := c.Slot(name)
		if !ok {
			return nil, UnknownVariant(name, path[0])
		}

		keys, ref, err := descend(slot, path)
		if err != nil {
			return nil, err
		}

		record, hasRecord := c.parameterFor(name, keys[0])
		if hasRecord && record.HasParent() && len(input.Selections[record.ParentName]) == 0 {
			return nil, UnsatisfiedDependency(name, record.ParentName)
		}

		variant := keys[len(keys)-1]
		if hasRecord && record.MatchBodyColor && slot.ColorFamily(variant) != slot.ColorFamily(bodyColor) {
			return nil, ColorMismatch(name, variant, bodyColor)
		}

		for _, animation := range input.Animations {
			if !slot.SupportsAnimation(animation) {
				return nil, UnsupportedAnimation(name, animation)
			}
		}

		assetPath, ok := slot.assetPath(input.BodyType, ref)
		if !ok {
			return nil, errors.Internalf("slot %q has no prefix for body type %q", name, input.BodyType).
				WithMeta(MetaSlot, name)
		}
		equipment[name] = assetPath
	}

	return &sprite.Configuration{
		BodyType:   input.BodyType,
		BodyColor:  bodyColor,
		Animations: slices.Clone(input.Animations),
		Equipment:  equipment,
	}, nil
}

// descend follows path from the slot root to a leaf and returns the keys it
// consumed along with the chosen terminal reference.
func descend(slot *Slot, path []string) ([]string, string, error) {
	root := slot.Root()

	if len(path) == 1 {
		if _, ok := root.Child(path[0]); !ok {
			keys, ref, matches := findTerminal(root, path[0])
			switch {
			case matches == 1:
				return keys, ref, nil
			case matches > 1:
				return nil, "", AmbiguousVariant(slot.Name(), path[0], matches)
			}
			return nil, "", UnknownVariant(slot.Name(), path[0])
		}
	}

	var node Node = root
	for depth := 0; ; depth++ {
		switch n := node.(type) {
		case *Internal:
			if depth >= len(path) {
				return nil, "", IncompleteSelection(slot.Name())
			}
			child, ok := n.Child(path[depth])
			if !ok {
				return nil, "", UnknownVariant(slot.Name(), path[depth])
			}
			node = child
		case *Leaf:
			keys := slices.Clone(path[:depth])
			if n.Len() > 1 && depth < len(path) {
				if !n.Contains(path[depth]) {
					return nil, "", UnknownVariant(slot.Name(), path[depth])
				}
				return keys, path[depth], nil
			}
			return keys, n.First(), nil
		default:
			return nil, "", errors.Internalf("unexpected node in slot %q", slot.Name())
		}
	}
}

// findTerminal searches the tree for a leaf holding id, or a leaf stored
// under the key id. It reports how many distinct references matched; callers
// must reject more than one.
func findTerminal(root *Internal, id string) ([]string, string, int) {
	var (
		found []string
		ref   string
		refs  = make(map[string]struct{})
	)
	walkLeaves(root, nil, func(path []string, leaf *Leaf) bool {
		var match string
		switch {
		case leaf.Contains(id):
			match = id
		case path[len(path)-1] == id:
			match = leaf.First()
		default:
			return true
		}
		if found == nil {
			found, ref = path, match
		}
		refs[match] = struct{}{}
		return true
	})
	return found, ref, len(refs)
}
