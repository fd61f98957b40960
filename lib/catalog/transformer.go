package catalog

/*
	TransformerSpec places PinCount pads in two columns at ±Pad.CenterX,
	numbered counterclockwise from the top-left pad, the way dual-inline
	packages are numbered.
*/
type TransformerSpec struct {
	Body       Body
	Pad        Pad
	PitchY     float64
	PinCount   int
	RefOffsetY float64
}

var transformers = map[string]TransformerSpec{
	"ZA9384": {
		Body:       Body{Width: 18.5, Height: 15.5},
		Pad:        Pad{Width: 2.5, Height: 1.75, CenterX: 7.75},
		PitchY:     2.5,
		PinCount:   10,
		RefOffsetY: -8.89,
	},
	"ZA9644": {
		Body:       Body{Width: 10.5, Height: 10.5},
		Pad:        Pad{Width: 2.45, Height: 1.6, CenterX: 3.675},
		PitchY:     2.5,
		PinCount:   8,
		RefOffsetY: -6.096,
	},
}

func Transformer(key string) (TransformerSpec, error) {
	spec, ok := transformers[key]
	if !ok {
		return TransformerSpec{}, &UnknownPackageError{Family: "transformer", Key: key}
	}
	return spec, nil
}

func TransformerKeys() []string {
	return sortedKeys(transformers)
}

/*
	SymbolPin is one pin of a transformer symbol winding side. Hidden
	no-connect pins keep the physical pin count honest without
	cluttering the drawing.
*/
type SymbolPin struct {
	Number string
	Y      float64
	Type   string
	Length float64
	Hide   bool
}

type WindingPins struct {
	Left  []SymbolPin
	Right []SymbolPin
}

var transformerPins = map[string]WindingPins{
	"ZA9384": {
		Left: []SymbolPin{
			{Number: "4", Y: 5.08, Type: "unspecified", Length: 5.08},
			{Number: "5", Y: 2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "3", Y: 0, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "1", Y: -2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "2", Y: -5.08, Type: "unspecified", Length: 5.08},
		},
		Right: []SymbolPin{
			{Number: "6", Y: 5.08, Type: "unspecified", Length: 5.08},
			{Number: "7", Y: 2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "8", Y: 0, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "9", Y: -2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "10", Y: -5.08, Type: "unspecified", Length: 5.08},
		},
	},
	"ZA9644": {
		Left: []SymbolPin{
			{Number: "1", Y: 5.08, Type: "unspecified", Length: 5.08},
			{Number: "2", Y: 2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "3", Y: -2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "4", Y: -5.08, Type: "unspecified", Length: 5.08},
		},
		Right: []SymbolPin{
			{Number: "5", Y: 5.08, Type: "unspecified", Length: 5.08},
			{Number: "6", Y: 2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "7", Y: -2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "8", Y: -5.08, Type: "unspecified", Length: 5.08},
		},
	},
	"750315836": {
		Left: []SymbolPin{
			{Number: "3", Y: 10.16, Type: "unspecified", Length: 5.08},
			{Number: "1", Y: 5.08, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "4", Y: 0, Type: "unspecified", Length: 5.08},
			{Number: "2", Y: -5.08, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "5", Y: -10.16, Type: "unspecified", Length: 5.08},
		},
		Right: []SymbolPin{
			{Number: "7", Y: 5.08, Type: "unspecified", Length: 5.08},
			{Number: "6", Y: 2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "8", Y: 0, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "10", Y: -2.54, Type: "no_connect", Length: 2.54, Hide: true},
			{Number: "9", Y: -5.08, Type: "unspecified", Length: 5.08},
		},
	},
}

func TransformerPins(key string) (WindingPins, error) {
	pins, ok := transformerPins[key]
	if !ok {
		return WindingPins{}, &UnknownPackageError{Family: "transformer", Key: key}
	}
	return pins, nil
}
