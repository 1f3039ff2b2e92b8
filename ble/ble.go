package ble

import (
  "fmt"

  "github.com/go-ble/ble"
  "github.com/go-ble/ble/linux"
  "github.com/go-ble/ble/linux/hci/cmd"
  "github.com/rs/zerolog/log"
)

type Advertisement = ble.Advertisement

type Handle struct {
  dev *linux.Device
}

func Init(deviceId int, flags Flags) (*Handle, error) {
  var scanType scanType = scanTypePassive

  if flags & FlagScanTypeActive == FlagScanTypeActive {
    scanType = scanTypeActive
  }

  log.Debug().
    Stringer("ScanType", scanType).
    Stringer("Flags", flags).
    Int("DeviceID", deviceId).
    Msg("Initializing Bluetooth device")

  dev, err := linux.NewDevice(
    ble.OptDeviceID(deviceId),
    ble.OptScanParams(cmd.LESetScanParameters{
      LEScanType:           uint8(scanType), // 0x00: passive, 0x01: active
      LEScanInterval:       0x0004,          // 0x0004 - 0x4000; N * 0.625msec
      LEScanWindow:         0x0004,          // 0x0004 - 0x4000; N * 0.625msec
      OwnAddressType:       0x00,            // 0x00: public, 0x01: random
      ScanningFilterPolicy: 0x00,            // accept all; devices are filtered by name.
    }),
  )

  if err != nil {
    return nil, fmt.Errorf("failed to init bluetooth device: %w", err)
  }

  ble.SetDefaultDevice(dev)

  return &Handle{dev: dev}, nil
}

func (h *Handle) Stop() {
  h.dev.Stop()
}
