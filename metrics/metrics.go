package metrics

import (
  "github.com/prometheus/client_golang/prometheus"
)

var metricLabels = []string{"device", "label"}

// Sink owns the latest-value gauges for every observed sensor. Gauge
// children are created lazily on the first reading from a (device, label)
// pair and live for the process lifetime; each update overwrites the last
// value. The GaugeVec handles its own locking, so updates are safe against
// concurrent scrapes.
type Sink struct {
  tempC *prometheus.GaugeVec
  tempF *prometheus.GaugeVec
  humidity *prometheus.GaugeVec
  battery *prometheus.GaugeVec
}

func NewSink(reg prometheus.Registerer) *Sink {
  s := &Sink{
    tempC: prometheus.NewGaugeVec(prometheus.GaugeOpts{
      Name: "govee_temp_c_deg",
      Help: "Govee Temperature (Celsius)",
    }, metricLabels),
    tempF: prometheus.NewGaugeVec(prometheus.GaugeOpts{
      Name: "govee_temp_f_deg",
      Help: "Govee Temperature (Fahrenheit)",
    }, metricLabels),
    humidity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
      Name: "govee_humidity_pct",
      Help: "Govee Humidity %",
    }, metricLabels),
    battery: prometheus.NewGaugeVec(prometheus.GaugeOpts{
      Name: "govee_battery_pct",
      Help: "Govee Battery Remaining %",
    }, metricLabels),
  }

  reg.MustRegister(s.tempC, s.tempF, s.humidity, s.battery)

  return s
}

func (s *Sink) SetTemperature(device, label string, celsius, fahrenheit float64) {
  s.tempC.WithLabelValues(device, label).Set(celsius)
  s.tempF.WithLabelValues(device, label).Set(fahrenheit)
}

func (s *Sink) SetHumidity(device, label string, pct float64) {
  s.humidity.WithLabelValues(device, label).Set(pct)
}

func (s *Sink) SetBattery(device, label string, pct uint8) {
  s.battery.WithLabelValues(device, label).Set(float64(pct))
}
