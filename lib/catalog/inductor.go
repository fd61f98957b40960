package catalog

/*
	Power inductor series. Packages sharing a case share dimensions, so
	entries repeat by design; each series still gets its own key because
	the 3D model and footprint are named after the series.
*/

var inductors = map[string]PassiveSpec{
	"XAL1010": {
		Body:       Body{Width: 10.922, Height: 12.192},
		Pad:        Pad{Width: 2.3876, Height: 8.9916, CenterX: 3.3274},
		RefOffsetY: -6.858,
	},
	"XAL1030": {
		Body:       Body{Width: 10.922, Height: 12.192},
		Pad:        Pad{Width: 2.3876, Height: 8.9916, CenterX: 3.3274},
		RefOffsetY: -6.858,
	},
	"XAL1060": {
		Body:       Body{Width: 10.922, Height: 12.192},
		Pad:        Pad{Width: 2.3876, Height: 8.9916, CenterX: 3.3274},
		RefOffsetY: -6.858,
	},
	"XAL1080": {
		Body:       Body{Width: 10.922, Height: 12.192},
		Pad:        Pad{Width: 2.3876, Height: 8.9916, CenterX: 3.3274},
		RefOffsetY: -6.858,
	},
	"XAL1350": {
		Body:       Body{Width: 13.716, Height: 14.732},
		Pad:        Pad{Width: 2.9718, Height: 11.9888, CenterX: 4.3053},
		RefOffsetY: -8.128,
	},
	"XAL1510": {
		Body:       Body{Width: 15.748, Height: 16.764},
		Pad:        Pad{Width: 3.175, Height: 13.208, CenterX: 5.2959},
		RefOffsetY: -9.144,
	},
	"XAL1513": {
		Body:       Body{Width: 15.748, Height: 16.764},
		Pad:        Pad{Width: 3.175, Height: 13.208, CenterX: 5.2959},
		RefOffsetY: -9.144,
	},
	"XAL1580": {
		Body:       Body{Width: 15.748, Height: 16.764},
		Pad:        Pad{Width: 3.175, Height: 13.208, CenterX: 5.2959},
		RefOffsetY: -9.144,
	},
	"XAL4020": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XAL4030": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XAL4040": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XAL5020": {
		Body:       Body{Width: 5.6896, Height: 5.9436},
		Pad:        Pad{Width: 1.1684, Height: 4.699, CenterX: 1.651},
		RefOffsetY: -3.81,
	},
	"XAL5030": {
		Body:       Body{Width: 5.6896, Height: 5.9436},
		Pad:        Pad{Width: 1.1684, Height: 4.699, CenterX: 1.651},
		RefOffsetY: -3.81,
	},
	"XAL5050": {
		Body:       Body{Width: 5.6896, Height: 5.9436},
		Pad:        Pad{Width: 1.1684, Height: 4.699, CenterX: 1.651},
		RefOffsetY: -3.81,
	},
	"XAL6020": {
		Body:       Body{Width: 6.858, Height: 7.112},
		Pad:        Pad{Width: 1.4224, Height: 5.4864, CenterX: 2.0193},
		RefOffsetY: -4.572,
	},
	"XAL6030": {
		Body:       Body{Width: 6.858, Height: 7.112},
		Pad:        Pad{Width: 1.4224, Height: 5.4864, CenterX: 2.0193},
		RefOffsetY: -4.572,
	},
	"XAL6060": {
		Body:       Body{Width: 6.858, Height: 7.112},
		Pad:        Pad{Width: 1.4224, Height: 5.4864, CenterX: 2.0193},
		RefOffsetY: -4.572,
	},
	"XAL7020": {
		Body:       Body{Width: 8.382, Height: 8.382},
		Pad:        Pad{Width: 1.778, Height: 6.5024, CenterX: 2.3622},
		RefOffsetY: -5.08,
	},
	"XAL7030": {
		Body:       Body{Width: 8.382, Height: 8.382},
		Pad:        Pad{Width: 1.778, Height: 6.5024, CenterX: 2.3622},
		RefOffsetY: -5.08,
	},
	"XAL7050": {
		Body:       Body{Width: 8.382, Height: 8.382},
		Pad:        Pad{Width: 1.778, Height: 6.5024, CenterX: 2.3622},
		RefOffsetY: -5.08,
	},
	"XAL7070": {
		Body:       Body{Width: 8.0264, Height: 8.382},
		Pad:        Pad{Width: 1.9304, Height: 6.5024, CenterX: 2.413},
		RefOffsetY: -5.08,
	},
	"XAL8050": {
		Body:       Body{Width: 8.636, Height: 9.144},
		Pad:        Pad{Width: 1.778, Height: 7.0104, CenterX: 2.5781},
		RefOffsetY: -5.588,
	},
	"XAL8080": {
		Body:       Body{Width: 8.636, Height: 9.144},
		Pad:        Pad{Width: 1.778, Height: 7.0104, CenterX: 2.5781},
		RefOffsetY: -5.588,
	},
	"XFL2005": {
		Body:       Body{Width: 2.6924, Height: 2.3876},
		Pad:        Pad{Width: 1.0414, Height: 2.2098, CenterX: 0.7239},
		RefOffsetY: -2.032,
	},
	"XFL2006": {
		Body:       Body{Width: 2.286, Height: 2.3876},
		Pad:        Pad{Width: 0.6096, Height: 1.8034, CenterX: 0.6731},
		RefOffsetY: -2.032,
	},
	"XFL2010": {
		Body:       Body{Width: 2.286, Height: 2.3876},
		Pad:        Pad{Width: 0.6096, Height: 1.8034, CenterX: 0.6731},
		RefOffsetY: -2.032,
	},
	"XFL3010": {
		Body:       Body{Width: 3.3528, Height: 3.3528},
		Pad:        Pad{Width: 0.9906, Height: 2.8956, CenterX: 1.016},
		RefOffsetY: -2.54,
	},
	"XFL3012": {
		Body:       Body{Width: 3.3528, Height: 3.3528},
		Pad:        Pad{Width: 0.9906, Height: 2.8956, CenterX: 1.016},
		RefOffsetY: -2.54,
	},
	"XFL4012": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XFL4015": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XFL4020": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XFL4030": {
		Body:       Body{Width: 4.4704, Height: 4.4704},
		Pad:        Pad{Width: 0.9652, Height: 3.4036, CenterX: 1.1811},
		RefOffsetY: -3.048,
	},
	"XFL5015": {
		Body:       Body{Width: 5.6896, Height: 5.9436},
		Pad:        Pad{Width: 1.1684, Height: 4.699, CenterX: 1.651},
		RefOffsetY: -3.81,
	},
	"XFL5018": {
		Body:       Body{Width: 5.6896, Height: 5.9436},
		Pad:        Pad{Width: 1.1684, Height: 4.699, CenterX: 1.651},
		RefOffsetY: -3.81,
	},
	"XFL5030": {
		Body:       Body{Width: 5.6896, Height: 5.9436},
		Pad:        Pad{Width: 1.1684, Height: 4.699, CenterX: 1.651},
		RefOffsetY: -3.81,
	},
	"XFL6012": {
		Body:       Body{Width: 6.858, Height: 7.112},
		Pad:        Pad{Width: 1.4224, Height: 5.4864, CenterX: 2.0193},
		RefOffsetY: -4.572,
	},
	"XFL6060": {
		Body:       Body{Width: 6.858, Height: 7.112},
		Pad:        Pad{Width: 1.4224, Height: 5.4864, CenterX: 2.0193},
		RefOffsetY: -4.572,
	},
	"XFL7015": {
		Body:       Body{Width: 8.382, Height: 8.382},
		Pad:        Pad{Width: 1.778, Height: 6.223, CenterX: 2.286},
		RefOffsetY: -5.08,
	},
}

func Inductor(key string) (PassiveSpec, error) {
	spec, ok := inductors[key]
	if !ok {
		return PassiveSpec{}, &UnknownPackageError{Family: "inductor", Key: key}
	}
	return spec, nil
}

func InductorKeys() []string {
	return sortedKeys(inductors)
}

/*
	CoupledInductorSpec places two pad columns of two pads each at
	(±Pad.CenterX, ±PitchY/2), numbered counterclockwise from the
	top-left pad.
*/
type CoupledInductorSpec struct {
	Body       Body
	Pad        Pad
	PitchY     float64
	RefOffsetY float64
}

var coupledInductors = map[string]CoupledInductorSpec{
	"MSD7342": {
		Body:       Body{Width: 7.874, Height: 7.874},
		Pad:        Pad{Width: 2.16, Height: 1.78, CenterX: 2.7686},
		PitchY:     4.318,
		RefOffsetY: -4.826,
	},
}

func CoupledInductor(key string) (CoupledInductorSpec, error) {
	spec, ok := coupledInductors[key]
	if !ok {
		return CoupledInductorSpec{},
			&UnknownPackageError{Family: "coupled inductor", Key: key}
	}
	return spec, nil
}

func CoupledInductorKeys() []string {
	return sortedKeys(coupledInductors)
}
