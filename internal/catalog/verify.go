package catalog

import (
	"slices"
	"sort"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// Verify checks a previously resolved configuration against the catalog. Each
// equipped asset path must be one the slot's tree produces for the body type;
// the recovered selections are then resolved again so dependency, color and
// animation rules apply. The returned configuration is the resolver's output.
func Verify(c *Catalog, config *sprite.Configuration) (*sprite.Configuration, error) {
	if config == nil {
		return nil, errors.InvalidArgument("configuration is required")
	}
	if !config.BodyType.IsValid() {
		return nil, errors.InvalidArgumentf("invalid body type %q", config.BodyType).
			WithMeta("body_type", string(config.BodyType))
	}

	names := make([]string, 0, len(config.Equipment))
	for name := range config.Equipment {
		names = append(names, name)
	}
	sort.Strings(names)

	selections := make(Selections, len(names))
	for _, name := range names {
		assetPath := config.Equipment[name]

		slot, ok := c.Slot(name)
		if !ok {
			return nil, UnknownVariant(name, assetPath)
		}

		path, ok := selectionFor(slot, config.BodyType, assetPath)
		if !ok {
			return nil, UnknownVariant(name, assetPath)
		}
		selections[name] = path
	}

	return Resolve(c, &ResolveInput{
		BodyType:   config.BodyType,
		BodyColor:  config.BodyColor,
		Animations: config.Animations,
		Selections: selections,
	})
}

// selectionFor finds the selection path whose leaf yields assetPath for the
// body type.
func selectionFor(slot *Slot, bodyType sprite.BodyType, assetPath string) ([]string, bool) {
	var found []string
	walkLeaves(slot.root, nil, func(path []string, leaf *Leaf) bool {
		for _, ref := range leaf.refs {
			if candidate, ok := slot.assetPath(bodyType, ref); ok && candidate == assetPath {
				found = path
				if leaf.Len() > 1 {
					found = append(slices.Clone(path), ref)
				}
				return false
			}
		}
		return true
	})
	return found, found != nil
}
