package simserver

import (
	"fmt"

	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/variant"
)

// Demo builds the built-in demonstration space: one device container with
// a handful of writable measurements, a sub-folder, a read-only setpoint
// that only its procedure may change, and two invokable procedures.
func Demo() *Server {
	s := New("demo")

	device := s.RootNode().AddContainer("DA_UA")
	device.AddDataPoint("Temperature", variant.NewValue(variant.Double, 0.0), true)
	device.AddDataPoint("Pressure", variant.NewValue(variant.Double, 0.0), true)
	device.AddDataPoint("Flow", variant.NewValue(variant.Double, 0.0), true)

	folder := device.AddContainer("folder_test")
	folder.AddDataPoint("Flow2", variant.NewValue(variant.Double, 0.0), true)

	target := device.AddDataPoint("TargetTemperature",
		variant.NewValue(variant.Double, 20.0), false)

	device.AddProcedure("IsEven",
		[]session.ArgumentDescriptor{{Name: "value", Type: variant.Int64}},
		func(args []variant.Value) (variant.Value, error) {
			n, ok := args[0].Data.(int64)
			if !ok {
				return variant.Value{}, fmt.Errorf("value must be Int64, got %s", args[0].Tag)
			}
			return variant.NewValue(variant.Boolean, n%2 == 0), nil
		})

	device.AddProcedure("SetTargetTemperature",
		[]session.ArgumentDescriptor{{Name: "value", Type: variant.Double}},
		func(args []variant.Value) (variant.Value, error) {
			deg, ok := args[0].Data.(float64)
			if !ok {
				return variant.Value{}, fmt.Errorf("value must be Double, got %s", args[0].Tag)
			}
			if deg < 0 || deg > 100 {
				return variant.Value{}, fmt.Errorf("%.1f out of range 0..100", deg)
			}
			target.SetValue(variant.NewValue(variant.Double, deg))
			return variant.NewValue(variant.String, "Good"), nil
		})

	return s
}
