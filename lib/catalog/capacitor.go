package catalog

var capacitors = map[string]PassiveSpec{
	"0402": {
		Body:       Body{Width: 1.82, Height: 0.92},
		Pad:        Pad{Width: 0.56, Height: 0.62, CenterX: 0.48},
		RefOffsetY: -1.27,
	},
	"0603": {
		Body:       Body{Width: 2.96, Height: 1.46},
		Pad:        Pad{Width: 0.9, Height: 0.95, CenterX: 0.775},
		RefOffsetY: -1.524,
	},
	"0805": {
		Body:       Body{Width: 3.4, Height: 1.96},
		Pad:        Pad{Width: 1.0, Height: 1.45, CenterX: 0.95},
		RefOffsetY: -1.778,
	},
	"1206": {
		Body:       Body{Width: 4.6, Height: 2.3},
		Pad:        Pad{Width: 1.15, Height: 1.8, CenterX: 1.475},
		RefOffsetY: -2.032,
	},
}

func Capacitor(key string) (PassiveSpec, error) {
	spec, ok := capacitors[key]
	if !ok {
		return PassiveSpec{}, &UnknownPackageError{Family: "capacitor", Key: key}
	}
	return spec, nil
}

func CapacitorKeys() []string {
	return sortedKeys(capacitors)
}
