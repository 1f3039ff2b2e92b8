package govee

import (
  "github.com/pkg/errors"
  "github.com/robertof/go-govee-exporter/device"
)

// CompanyID is the Bluetooth company identifier Govee H5072/H5075 sensors
// key their advertisement payload with.
const CompanyID uint16 = 0xec88

const thPayloadLen = 5

// Decoders returns the registry of supported Govee models. H5072 and H5075
// share the same advertisement layout.
func Decoders() device.Registry {
  th := thDecoder{}

  return device.Registry{
    "GVH5072": th,
    "GVH5075": th,
  }
}

// thDecoder decodes the payload broadcast by H5072/H5075 sensors:
//
//   payload[0]    unknown (padding?)
//   payload[1:4]  temperature and humidity, packed big endian; bit 23 is the
//                 temperature sign
//   payload[4]    battery %
//   payload[5]    unknown (padding?)
//
// See https://github.com/Thrilleratplay/GoveeWatcher for the layout.
type thDecoder struct{}

func (thDecoder) Decode(md device.ManufacturerData) (reading device.Reading, err error) {
  payload, ok := md[CompanyID]

  if !ok {
    return reading, errors.Wrapf(device.ErrInvalidData,
      "manufacturer data carries no company ID %#04x", CompanyID)
  }

  if len(payload) < thPayloadLen {
    return reading, errors.Wrapf(device.ErrInvalidData,
      "unexpected payload length (%d), want >= %d", len(payload), thPayloadLen)
  }

  packed := uint32(payload[1]) << 16 | uint32(payload[2]) << 8 | uint32(payload[3])

  // Bit 23 flags a negative temperature. Mask it off so e.g. -2.5C does not
  // decode as 839C.
  negative := packed & 0x800000 != 0
  magnitude := packed & 0x7fffff

  reading.TemperatureCelsius = float64(magnitude) / 10000

  if negative {
    reading.TemperatureCelsius = -reading.TemperatureCelsius
  }

  reading.Humidity = float64(magnitude % 1000) / 10
  reading.BatteryLevel = payload[4]

  return reading, nil
}
