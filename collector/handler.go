package collector

import (
  "strings"

  "github.com/robertof/go-govee-exporter/ble"
  "github.com/robertof/go-govee-exporter/device"
  "github.com/rs/zerolog/log"
)

// vendorPrefix starts the broadcast name of every supported Govee sensor.
const vendorPrefix = "GVH"

// Sink receives the decoded values of each accepted advertisement. All three
// updates derive from one decode; there is no ordering requirement between
// them.
type Sink interface {
  SetTemperature(device, label string, celsius, fahrenheit float64)
  SetHumidity(device, label string, pct float64)
  SetBattery(device, label string, pct uint8)
}

// Handler routes a single advertisement through filtering, decoding and the
// metric sink. Not safe for concurrent use; Loop serializes calls to it.
type Handler struct {
  allowList device.AllowList
  registry device.Registry
  sink Sink
}

func NewHandler(allowList device.AllowList, registry device.Registry, sink Sink) *Handler {
  return &Handler{
    allowList: allowList,
    registry: registry,
    sink: sink,
  }
}

func (h *Handler) HandleAdvertisement(a ble.Advertisement) {
  deviceName := a.LocalName()

  if !strings.HasPrefix(deviceName, vendorPrefix) {
    return
  }

  label, ok := h.allowList.Resolve(deviceName)

  if !ok {
    advertisementsCounter.WithLabelValues(resultNotAllowListed).Inc()

    log.Info().
      Str("Device", deviceName).
      Msg("Ignoring device not on the scan list")

    return
  }

  decoder := h.registry.Lookup(deviceName)

  if decoder == nil {
    advertisementsCounter.WithLabelValues(resultNoDecoder).Inc()
    return
  }

  reading, err := decoder.Decode(device.ParseManufacturerData(a.ManufacturerData()))

  if err != nil {
    advertisementsCounter.WithLabelValues(resultDecodeFailed).Inc()

    log.Debug().
      Err(err).
      Str("Device", deviceName).
      Hex("ManufacturerData", a.ManufacturerData()).
      Msg("Dropping advertisement with undecodable payload")

    return
  }

  // A guard against corrupted readings was prototyped here (weak-signal
  // H5075s occasionally decode to ~839C) and left disabled: rejecting on a
  // temperature-jump threshold means guessing at the corruption mode, which
  // is a sensor-reliability policy call. All decoded values are surfaced.

  h.sink.SetTemperature(deviceName, label, reading.TemperatureCelsius, reading.TemperatureFahrenheit())
  h.sink.SetHumidity(deviceName, label, reading.Humidity)
  h.sink.SetBattery(deviceName, label, reading.BatteryLevel)

  advertisementsCounter.WithLabelValues(resultProcessed).Inc()

  log.Info().
    Str("Device", deviceName).
    Str("Label", label).
    Float64("TempC", reading.TemperatureCelsius).
    Float64("TempF", reading.TemperatureFahrenheit()).
    Float64("Humidity", reading.Humidity).
    Uint8("Battery", reading.BatteryLevel).
    Msg("Processed sensor reading")
}
