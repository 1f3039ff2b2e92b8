package govee_test

import (
  "errors"
  "reflect"
  "testing"

  "github.com/robertof/go-govee-exporter/device"
  "github.com/robertof/go-govee-exporter/device/govee"
)

func decoder(t *testing.T) device.Decoder {
  t.Helper()

  d := govee.Decoders().Lookup("GVH5075_ABCD")

  if d == nil {
    t.Fatal("no decoder registered for GVH5075")
  }

  return d
}

func TestDecode(t *testing.T) {
  // bytes[1:4] = 0x010203 = 66051 -> temp 6.6051C, humidity 5.1%.
  md := device.ManufacturerData{
    govee.CompanyID: []byte{0x00, 0x01, 0x02, 0x03, 0x50},
  }

  got, err := decoder(t).Decode(md)

  if err != nil {
    t.Fatalf("Decode(%v) got error: %v", md, err)
  }

  want := device.Reading{
    TemperatureCelsius: 6.6051,
    Humidity:           5.1,
    BatteryLevel:       80,
  }

  if !reflect.DeepEqual(got, want) {
    t.Fatalf("Decode(%v): got %+#v, wanted %+#v", md, got, want)
  }
}

func TestDecode_NegativeTemperature(t *testing.T) {
  // magnitude 213400 (21.34C) with bit 23 set: 0x800000|0x034198 = 0x834198.
  md := device.ManufacturerData{
    govee.CompanyID: []byte{0x00, 0x83, 0x41, 0x98, 0x64},
  }

  got, err := decoder(t).Decode(md)

  if err != nil {
    t.Fatalf("Decode(%v) got error: %v", md, err)
  }

  want := device.Reading{
    TemperatureCelsius: -21.34,
    Humidity:           40.0,
    BatteryLevel:       100,
  }

  if !reflect.DeepEqual(got, want) {
    t.Fatalf("Decode(%v): got %+#v, wanted %+#v", md, got, want)
  }
}

func TestDecode_HumidityUsesOnlyLastThreeDigits(t *testing.T) {
  // magnitude 123456 = 0x01e240 -> humidity (123456 % 1000) / 10 = 45.6%.
  md := device.ManufacturerData{
    govee.CompanyID: []byte{0x00, 0x01, 0xe2, 0x40, 0x10},
  }

  got, err := decoder(t).Decode(md)

  if err != nil {
    t.Fatalf("Decode(%v) got error: %v", md, err)
  }

  if got.Humidity != 45.6 {
    t.Fatalf("Decode(%v): got humidity %v, wanted 45.6", md, got.Humidity)
  }

  if got.TemperatureCelsius != 12.3456 {
    t.Fatalf("Decode(%v): got temperature %v, wanted 12.3456", md, got.TemperatureCelsius)
  }
}

func TestDecode_FromRawManufacturerData(t *testing.T) {
  // company ID 0xec88 little endian, then the payload.
  raw := []byte{0x88, 0xec, 0x00, 0x01, 0x02, 0x03, 0x50, 0x00}

  got, err := decoder(t).Decode(device.ParseManufacturerData(raw))

  if err != nil {
    t.Fatalf("Decode(%x) got error: %v", raw, err)
  }

  want := device.Reading{
    TemperatureCelsius: 6.6051,
    Humidity:           5.1,
    BatteryLevel:       80,
  }

  if !reflect.DeepEqual(got, want) {
    t.Fatalf("Decode(%x): got %+#v, wanted %+#v", raw, got, want)
  }
}

func TestDecode_MissingCompanyID(t *testing.T) {
  md := device.ManufacturerData{
    0x004c: []byte{0x00, 0x01, 0x02, 0x03, 0x50},
  }

  _, err := decoder(t).Decode(md)

  if !errors.Is(err, device.ErrInvalidData) {
    t.Fatalf("Decode(%v): got error %v, wanted ErrInvalidData", md, err)
  }
}

func TestDecode_ShortPayload(t *testing.T) {
  md := device.ManufacturerData{
    govee.CompanyID: []byte{0x00, 0x01, 0x02, 0x03},
  }

  _, err := decoder(t).Decode(md)

  if !errors.Is(err, device.ErrInvalidData) {
    t.Fatalf("Decode(%v): got error %v, wanted ErrInvalidData", md, err)
  }
}

func TestDecode_NilManufacturerData(t *testing.T) {
  _, err := decoder(t).Decode(device.ParseManufacturerData(nil))

  if !errors.Is(err, device.ErrInvalidData) {
    t.Fatalf("Decode(nil): got error %v, wanted ErrInvalidData", err)
  }
}
