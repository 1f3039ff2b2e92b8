package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"

	"github.com/robertof/go-govee-exporter/ble"
	"github.com/robertof/go-govee-exporter/device"
	"github.com/robertof/go-govee-exporter/device/govee"
	"github.com/robertof/go-govee-exporter/utils"
)

const discoveryWindow = 5 * time.Second

// Discovery mode: scan for everything for a few seconds and report what was
// found, flagging devices the exporter knows how to decode.
func doDeviceDiscovery(cfg config) {
  log.Info().
    Dur("WindowSec", discoveryWindow).
    Msg("Starting in device discovery mode")

  handle, err := ble.Init(cfg.BluetoothDeviceId, ble.FlagScanTypeActive)

  if err != nil {
    log.Fatal().Err(err).Msg("Failed to initialize Bluetooth device")
  }

  ctx := ble.WrapContextWithSigHandler(
    context.WithTimeout(
      context.Background(),
      discoveryWindow,
    ),
  )

  type deviceInfo struct {
    name string
    companies map[uint16]bool
  }

  devices := make(map[string]deviceInfo)

  err = handle.ScanAll(ctx, func(a ble.Advertisement) {
    info, ok := devices[a.Addr().String()]

    if !ok {
      info = deviceInfo{companies: make(map[uint16]bool)}
    }

    if info.name == "" {
      info.name = a.LocalName()
    }

    for company := range device.ParseManufacturerData(a.ManufacturerData()) {
      info.companies[company] = true
    }

    devices[a.Addr().String()] = info

    log.Debug().
      Str("Addr", a.Addr().String()).
      Str("Name", a.LocalName()).
      Hex("ManufacturerData", a.ManufacturerData()).
      Msg("Received device advertisement")
  })

  if err != nil && !utils.ErrorIsAnyOf(err, context.Canceled, context.DeadlineExceeded) {
    log.Fatal().Err(err).Msg("Failed to initiate scan")
  }

  log.Info().Int("Found", len(devices)).Msg("Finished device discovery")

  decoders := govee.Decoders()

  for addr, info := range devices {
    supported := decoders.Lookup(info.name) != nil && info.companies[govee.CompanyID]

    log.Info().
      Str("Addr", addr).
      Str("Name", info.name).
      Bool("Supported", supported).
      Interface("CompanyIDs", maps.Keys(info.companies)).
      Msg("Found device")
  }
}
