package poline_test

import (
	"fmt"

	"honnef.co/go/poline"
)

func Example() {
	p, err := poline.New(poline.Options{
		AnchorColors: []poline.HSL{
			{H: 0, S: 1, L: 0.5},
			{H: 180, S: 1, L: 0.5},
		},
		NumPoints:        2,
		PositionFunction: poline.LinearPosition,
	})
	if err != nil {
		panic(err)
	}

	for _, hex := range p.ColorsHex() {
		fmt.Println(hex)
	}

	// Output:
	// #ff0000
	// #550000
	// #005555
	// #00ffff
}

func ExamplePoline_ShiftHue() {
	p, err := poline.New(poline.Options{
		AnchorColors: []poline.HSL{
			{H: 340, S: 1, L: 0.5},
			{H: 100, S: 1, L: 0.5},
		},
	})
	if err != nil {
		panic(err)
	}

	p.ShiftHue(40)
	anchors := p.Anchors()
	fmt.Printf("%.0f %.0f\n", anchors[0].Color().H, anchors[1].Color().H)

	// Output:
	// 20 140
}
