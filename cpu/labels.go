package cpu

import (
	"maps"
	"slices"
)

// Labels maps label names to the addresses they were bound to.
type Labels map[string]uint16

// Define binds a new label. Labels can not be redefined.
func (labels Labels) Define(name string, address uint16) (err error) {
	_, ok := labels[name]
	if ok {
		err = ErrLabelDuplicate
		return
	}

	labels[name] = address
	return
}

// Lookup returns the address of a label.
func (labels Labels) Lookup(name string) (address uint16, err error) {
	address, ok := labels[name]
	if !ok {
		err = ErrLabelMissing(name)
	}
	return
}

// Names returns the label names ordered by address, then by name.
func (labels Labels) Names() []string {
	return slices.SortedFunc(maps.Keys(labels), func(a, b string) int {
		if labels[a] != labels[b] {
			return int(labels[a]) - int(labels[b])
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
}
