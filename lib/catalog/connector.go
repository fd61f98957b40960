package catalog

/*
	ConnectorSpec describes a terminal block series. The stored body
	half-widths are for the two-pin variant; the generator widens both
	sides by (pinCount-2)*Pitch/2. HeightTop and HeightBottom are signed
	board coordinates, so a series can hang below or above the pin row.

	The 3D model of a series is aligned for the two-pin variant at
	ModelOffset; longer variants slide the model along X by
	(pinCount-2)*ModelStep in the direction of ModelStepSign.
*/
type ConnectorSpec struct {
	Pitch         float64
	WidthLeft     float64
	WidthRight    float64
	HeightTop     float64
	HeightBottom  float64
	PadSize       float64
	DrillSize     float64
	SilkMargin    float64
	MaskMargin    float64
	MPNOffsetY    float64
	RefOffsetY    float64
	ModelOffset   [3]float64
	ModelRotation [3]float64
	ModelStep     float64
	ModelStepSign float64
}

var connectors = map[string]ConnectorSpec{
	"TB004-508": {
		Pitch:      5.08,
		WidthLeft:  5.8, WidthRight: 5.2,
		HeightTop: 5.2, HeightBottom: -5.2,
		PadSize: 2.55, DrillSize: 1.7,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: 6.096, RefOffsetY: -6.096,
		ModelStepSign: -1,
	},
	"TB006-508": {
		Pitch:      5.08,
		WidthLeft:  5.8, WidthRight: 5.2,
		HeightTop: 4.2, HeightBottom: -4.2,
		PadSize: 2.55, DrillSize: 1.7,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: 5.334, RefOffsetY: -5.334,
		ModelStepSign: -1,
	},
	"TBP02R1-381": {
		Pitch:      3.81,
		WidthLeft:  4.4, WidthRight: 4.4,
		HeightTop: -7.9, HeightBottom: 1.4,
		PadSize: 2.1, DrillSize: 1.4,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: -8.8, RefOffsetY: 2.4,
		ModelOffset:   [3]float64{-17.15, 17.0, -3.4},
		ModelRotation: [3]float64{0, 90, 180},
		ModelStep:     1.905,
		ModelStepSign: 1,
	},
	"TBP02R2-381": {
		Pitch:      3.81,
		WidthLeft:  4.445, WidthRight: 4.445,
		HeightTop: 3.2512, HeightBottom: -4.445,
		PadSize: 2.1, DrillSize: 1.4,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: -5.4, RefOffsetY: 4.2,
		ModelOffset:   [3]float64{17.145, -6.477, 18.288},
		ModelRotation: [3]float64{90, 0, -90},
		ModelStep:     1.905,
		ModelStepSign: -1,
	},
	"TBP04R1-500": {
		Pitch:      5.0,
		WidthLeft:  5.2, WidthRight: 5.2,
		HeightTop: -2.2, HeightBottom: 9.9,
		PadSize: 2.55, DrillSize: 1.7,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: 10.8, RefOffsetY: -3.0,
		ModelOffset:   [3]float64{-1.65, 1.0, -3.81},
		ModelRotation: [3]float64{-90, 0, 90},
		ModelStep:     2.5,
		ModelStepSign: 1,
	},
	"TBP04R2-500": {
		Pitch:      5.0,
		WidthLeft:  5.8, WidthRight: 5.8,
		HeightTop: 4.8, HeightBottom: -4.0,
		PadSize: 2.55, DrillSize: 1.7,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: -4.8, RefOffsetY: 5.8,
		ModelOffset:   [3]float64{5, -0.75, -3.81},
		ModelRotation: [3]float64{-90, 0, 180},
		ModelStep:     2.5,
		ModelStepSign: 1,
	},
	"TBP04R3-500": {
		Pitch:      5.0,
		WidthLeft:  5.2, WidthRight: 5.2,
		HeightTop: 4.8, HeightBottom: -4.0,
		PadSize: 2.55, DrillSize: 1.7,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: -4.8, RefOffsetY: 5.8,
		ModelOffset:   [3]float64{5, -0.75, -3.81},
		ModelRotation: [3]float64{-90, 0, 180},
		ModelStep:     2.5,
		ModelStepSign: 1,
	},
	"TBP04R12-500": {
		Pitch:      5.0,
		WidthLeft:  5.8, WidthRight: 5.8,
		HeightTop: -2.2, HeightBottom: 9.9,
		PadSize: 2.55, DrillSize: 1.7,
		SilkMargin: 0.1524, MaskMargin: 0.102,
		MPNOffsetY: 10.8, RefOffsetY: -3.0,
		ModelOffset:   [3]float64{-5, -5.6, -3.81},
		ModelRotation: [3]float64{-90, 0, 0},
		ModelStep:     2.5,
		ModelStepSign: -1,
	},
}

func Connector(key string) (ConnectorSpec, error) {
	spec, ok := connectors[key]
	if !ok {
		return ConnectorSpec{}, &UnknownPackageError{Family: "connector", Key: key}
	}
	return spec, nil
}

func ConnectorKeys() []string {
	return sortedKeys(connectors)
}
