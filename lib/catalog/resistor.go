package catalog

/*
	Chip resistor packages keyed by imperial case code. MetricCase maps
	the case code to its metric equivalent for footprint naming, e.g.
	R_0402_1005Metric.
*/

var MetricCase = map[string]string{
	"0402": "1005",
	"0603": "1608",
	"0805": "2012",
	"1206": "3216",
}

var resistors = map[string]PassiveSpec{
	"0402": {
		Body:       Body{Width: 1.82, Height: 0.955},
		Pad:        Pad{Width: 0.54, Height: 0.64, CenterX: 0.51},
		RefOffsetY: -1.27,
	},
	"0603": {
		Body:       Body{Width: 2.96, Height: 1.46},
		Pad:        Pad{Width: 0.8, Height: 0.95, CenterX: 0.825},
		RefOffsetY: -1.524,
	},
	"0805": {
		Body:       Body{Width: 3.36, Height: 1.9},
		Pad:        Pad{Width: 1.025, Height: 1.4, CenterX: 0.9125},
		RefOffsetY: -1.778,
	},
	"1206": {
		Body:       Body{Width: 4.56, Height: 2.24},
		Pad:        Pad{Width: 1.125, Height: 1.75, CenterX: 1.4625},
		RefOffsetY: -2.032,
	},
}

func Resistor(key string) (PassiveSpec, error) {
	spec, ok := resistors[key]
	if !ok {
		return PassiveSpec{}, &UnknownPackageError{Family: "resistor", Key: key}
	}
	return spec, nil
}

func ResistorKeys() []string {
	return sortedKeys(resistors)
}
