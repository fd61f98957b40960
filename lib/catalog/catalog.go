/*
	Package catalog holds the frozen per-package geometry tables the
	generators compile from. Entries are millimeter dimensions keyed by
	package or series name; the tables never change at runtime.

	Lookups return UnknownPackageError on a miss so that callers can
	resolve every package before emitting anything.
*/
package catalog

import (
	"fmt"
	"sort"
)

type UnknownPackageError struct {
	Family string
	Key    string
}

func (e *UnknownPackageError) Error() string {
	return fmt.Sprintf("%s catalogue has no entry for package %q", e.Family, e.Key)
}

/*
	Body is the courtyard envelope of a package, centered on the origin.
	The fabrication outline uses the same rectangle.
*/
type Body struct {
	Width  float64
	Height float64
}

type Pad struct {
	Width   float64
	Height  float64
	CenterX float64
}

/*
	PassiveSpec covers the mirrored two-pad chip packages: resistors,
	capacitors and simple inductors. Pads sit at ±Pad.CenterX on the
	X axis.
*/
type PassiveSpec struct {
	Body       Body
	Pad        Pad
	RefOffsetY float64
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
