package kicad

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

/*
	Every graphical object in a KiCad file carries a unique identifier.
	The generator is injected so that tests can substitute a predictable
	sequence; production code uses fresh UUIDs on every call.
*/
type IDGenerator func() string

func UUIDs() IDGenerator {
	return func() string {
		return uuid.NewString()
	}
}

func SequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return "00000000-0000-0000-0000-" + leftPad(strconv.Itoa(n), 12)
	}
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

/*
	Emitter formats geometric primitives as KiCad s-expression text.
	All methods are pure formatting aside from identifier generation.
*/
type Emitter struct {
	NewID IDGenerator
}

func NewEmitter() *Emitter {
	return &Emitter{NewID: UUIDs()}
}

type XY struct {
	X float64
	Y float64
}

/*
	ftoa renders a millimeter value in the shortest decimal form, the
	same representation the consuming CAD tool writes itself. Negative
	zero collapses to zero so that mirrored coordinates stay symmetric.
*/
func ftoa(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func Ftoa(v float64) string {
	return ftoa(v)
}

func joinSections(sections []string) string {
	return strings.Join(sections, "\n")
}
