package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robertof/go-govee-exporter/device"
)

func TestTemperatureFahrenheit(t *testing.T) {
	tests := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{0.0, 32.0},
		{100.0, 212.0},
		{-40.0, -40.0},
		// rounded to two decimal places: 6.6051C is 43.88918F exactly.
		{6.6051, 43.89},
	}
	for _, tt := range tests {
		r := device.Reading{TemperatureCelsius: tt.celsius}
		assert.Equal(t, tt.fahrenheit, r.TemperatureFahrenheit(), "celsius: %v", tt.celsius)
	}
}

func TestReadingString(t *testing.T) {
	r := device.Reading{
		TemperatureCelsius: 6.6051,
		Humidity:           5.1,
		BatteryLevel:       80,
	}
	assert.Equal(t, "Reading[Temp=6.6051C (43.89F),Humidity=5.1%,Battery=80%]", r.String())
}
