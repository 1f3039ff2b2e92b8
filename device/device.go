package device

import (
	"encoding/binary"
	"errors"
)

var (
  ErrInvalidData = errors.New("invalid data")
)

// ManufacturerData maps a Bluetooth company identifier to the vendor payload
// that followed it in the advertisement.
type ManufacturerData map[uint16][]byte

// ParseManufacturerData splits a raw manufacturer-data AD structure into its
// company identifier (first two bytes, little endian) and payload. Returns
// nil if the data is too short to carry a company identifier.
func ParseManufacturerData(raw []byte) ManufacturerData {
  if len(raw) < 2 {
    return nil
  }

  return ManufacturerData{
    binary.LittleEndian.Uint16(raw): raw[2:],
  }
}

// Decoder turns the manufacturer data of a single advertisement into a
// Reading.
type Decoder interface {
  Decode(md ManufacturerData) (Reading, error)
}
