package catalog

/*
	TransistorSpec covers power MOSFET packages with grouped pads: a
	column of individually numbered pins on the left, a column sharing
	one electrical number on the right, and a heat-slug pad carrying
	that shared number. PadNumbers lists the electrical number of every
	physical pad in placement order; its length must equal twice
	PinsPerSide.
*/
type TransistorSpec struct {
	Body           Body
	Pad            Pad
	PitchY         float64
	PinsPerSide    int
	PadNumbers     []string
	ThermalWidth   float64
	ThermalHeight  float64
	ThermalCenterX float64
	ThermalNumber  string
	RefOffsetY     float64
}

var transistors = map[string]TransistorSpec{
	"PowerPAK 1212-8": {
		Body:           Body{Width: 4.0, Height: 3.9},
		Pad:            Pad{Width: 0.99, Height: 0.405, CenterX: 1.435},
		PitchY:         0.66,
		PinsPerSide:    4,
		PadNumbers:     []string{"1", "2", "3", "4", "5", "5", "5", "5"},
		ThermalWidth:   1.725,
		ThermalHeight:  2.385,
		ThermalCenterX: 0.558,
		ThermalNumber:  "5",
		RefOffsetY:     -2.5,
	},
}

func Transistor(key string) (TransistorSpec, error) {
	spec, ok := transistors[key]
	if !ok {
		return TransistorSpec{}, &UnknownPackageError{Family: "transistor", Key: key}
	}
	return spec, nil
}

func TransistorKeys() []string {
	return sortedKeys(transistors)
}
