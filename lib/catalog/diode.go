package catalog

/*
	DiodeSpec covers two-terminal discrete packages. The cathode pad is
	pad 1 at -Pad.CenterX. Packages with an exposed heat slug carry a
	centered thermal pad numbered 3.
*/
type DiodeSpec struct {
	Body          Body
	Pad           Pad
	ThermalWidth  float64
	ThermalHeight float64
	HasThermalPad bool
	RefOffsetY    float64
}

var diodes = map[string]DiodeSpec{
	"PowerDI-123": {
		Body:          Body{Width: 3.0, Height: 2.0},
		Pad:           Pad{Width: 1.0, Height: 1.2, CenterX: 1.15},
		ThermalWidth:  1.8,
		ThermalHeight: 1.2,
		HasThermalPad: true,
		RefOffsetY:    -2.5,
	},
	"SOD-123": {
		Body:       Body{Width: 2.85, Height: 1.8},
		Pad:        Pad{Width: 1.0, Height: 1.2, CenterX: 1.635},
		RefOffsetY: -2.0,
	},
}

func Diode(key string) (DiodeSpec, error) {
	spec, ok := diodes[key]
	if !ok {
		return DiodeSpec{}, &UnknownPackageError{Family: "diode", Key: key}
	}
	return spec, nil
}

func DiodeKeys() []string {
	return sortedKeys(diodes)
}
