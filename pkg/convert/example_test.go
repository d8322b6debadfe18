package convert_test

import (
	"fmt"

	"github.com/unitkit/unitkit/pkg/convert"
	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/prefix"
	"github.com/unitkit/unitkit/pkg/quantity"
)

func ExampleEngine_To() {
	e := convert.NewEngine()
	q := quantity.New(2500, prefix.Identity(), dimension.Vector{Length: 1})

	km, _ := e.To(q, "km")
	fmt.Println(km)
	// Output: 2.5 km
}

func ExampleEngine_ConvertUnit() {
	e := convert.NewEngine()
	velocity := quantity.New(10, prefix.Identity(), dimension.Vector{Length: 1, Time: -1})

	kmh, _ := e.ConvertUnit(velocity, "km/h")
	fmt.Printf("%g %s\n", kmh.Value, kmh.Unit)
	// Output: 36 km/h
}

func ExampleEngine_Pretty() {
	e := convert.NewEngine()
	q := quantity.New(0.00032, prefix.Identity(), dimension.Vector{Length: 1})

	fmt.Println(e.Pretty(q, 4, prefix.Thousands))
	// Output: 0.32 mm
}

func ExampleEngine_RegisterUnit() {
	e := convert.NewEngine()
	energy := dimension.Vector{Mass: 1, Length: 2, Time: -2}
	_ = e.RegisterUnit("BTU", energy, 1, 1055.06)

	q := quantity.New(2110.12, prefix.Identity(), energy)
	btu, _ := e.ConvertUnit(q, "BTU")
	fmt.Printf("%.0f %s\n", btu.Value, btu.Unit)
	// Output: 2 BTU
}
