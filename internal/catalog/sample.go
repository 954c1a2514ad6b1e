package catalog

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=catalogmock github.com/KirkDiggler/rpg-toolkit/dice Roller

// Sample is a randomly chosen body type and one selection path per slot
type Sample struct {
	BodyType   sprite.BodyType
	Selections Selections
}

// SampleRandom draws a body type and walks every slot's tree to a leaf,
// choosing uniformly at each level. Slots are sampled independently, so a
// sample can still fail dependency or color checks in Resolve.
func SampleRandom(c *Catalog, roller dice.Roller) (*Sample, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	bodyTypes := c.BodyTypes()
	i, err := pick(roller, len(bodyTypes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick body type")
	}

	sample := &Sample{
		BodyType:   bodyTypes[i],
		Selections: make(Selections, len(c.slotNames)),
	}
	for _, name := range c.slotNames {
		path, err := SampleSlot(c.slots[name], roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sample slot %s", name)
		}
		sample.Selections[name] = path
	}

	return sample, nil
}

// SampleSlot draws one selection path for a single slot
func SampleSlot(slot *Slot, roller dice.Roller) ([]string, error) {
	var (
		path []string
		node Node = slot.Root()
	)
	for {
		switch n := node.(type) {
		case *Internal:
			keys := n.Keys()
			i, err := pick(roller, len(keys))
			if err != nil {
				return nil, err
			}
			path = append(path, keys[i])
			node, _ = n.Child(keys[i])
		case *Leaf:
			if n.Len() > 1 {
				i, err := pick(roller, n.Len())
				if err != nil {
					return nil, err
				}
				path = append(path, n.refs[i])
			}
			return path, nil
		default:
			return nil, errors.Internalf("unexpected node in slot %q", slot.Name())
		}
	}
}

// pick returns a uniform index in [0, n)
func pick(roller dice.Roller, n int) (int, error) {
	if n <= 0 {
		return 0, errors.Internal("nothing to choose from")
	}
	if n == 1 {
		return 0, nil
	}
	roll, err := roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roll %d outside 1..%d", roll, n)
	}
	return roll - 1, nil
}
