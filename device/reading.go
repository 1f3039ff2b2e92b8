package device

import (
  "fmt"
  "math"
)

type Reading struct {
  TemperatureCelsius float64
  Humidity float64
  BatteryLevel uint8
}

// TemperatureFahrenheit converts the reading's temperature to Fahrenheit,
// rounded to two decimal places.
func (r Reading) TemperatureFahrenheit() float64 {
  return math.Round((32 + 9 * r.TemperatureCelsius / 5) * 100) / 100
}

func (r Reading) String() string {
  return fmt.Sprintf("Reading[Temp=%gC (%gF),Humidity=%.1f%%,Battery=%d%%]",
    r.TemperatureCelsius, r.TemperatureFahrenheit(), r.Humidity, r.BatteryLevel)
}
