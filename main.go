package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robertof/go-govee-exporter/ble"
	"github.com/robertof/go-govee-exporter/collector"
	"github.com/robertof/go-govee-exporter/device/govee"
	"github.com/robertof/go-govee-exporter/metrics"
	"github.com/robertof/go-govee-exporter/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
  zerolog.DurationFieldUnit = time.Second
  zerolog.TimeFieldFormat = time.RFC3339Nano

  log.Logger = log.Output(zerolog.ConsoleWriter{
    Out: os.Stderr,
    TimeFormat: "15:04:05.000",
  })

  cfg := ParseArgs()

  if cfg.LogFile != "" {
    f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

    if err != nil {
      log.Fatal().Err(err).Str("LogFile", cfg.LogFile).Msg("Unable to open log file")
    }

    log.Logger = log.Output(f)
  }

  if cfg.Trace || os.Getenv("TRACE") != "" {
      zerolog.SetGlobalLevel(zerolog.TraceLevel)
  } else if cfg.Debug || os.Getenv("DEBUG") != "" {
      zerolog.SetGlobalLevel(zerolog.DebugLevel)
  } else {
      zerolog.SetGlobalLevel(zerolog.InfoLevel)
  }

  if cfg.DiscoverDevices {
    doDeviceDiscovery(cfg)
    return
  }

  if len(cfg.Devices) > 0 {
    log.Info().
      Str("BindAddr", cfg.BindAddress).
      Array("Devices", utils.ToZeroLogArray(cfg.Devices.Entries())).
      Int("BluetoothDeviceID", cfg.BluetoothDeviceId).
      Msg("Scanning for the configured devices")
  } else {
    log.Info().
      Str("BindAddr", cfg.BindAddress).
      Int("BluetoothDeviceID", cfg.BluetoothDeviceId).
      Msg("Scanning for all supported devices")
  }

  bleHandle, err := ble.Init(cfg.BluetoothDeviceId, ble.FlagScanTypeActive)

  if err != nil {
    log.Fatal().Err(err).Msg("Failed to initialize Bluetooth device")
  }

  registry := prometheus.NewRegistry()
  sink := metrics.NewSink(registry)

  if cfg.EnableMetamonitoring {
    collector.RegisterMetrics(registry)
  }

  handler := collector.NewHandler(cfg.Devices, govee.Decoders(), sink)
  loop := collector.NewLoop(bleHandle, handler)

  go func() {
    err := loop.Run(context.Background(), cfg.PollInterval)
    log.Fatal().Err(err).Msg("Scan loop terminated unexpectedly")
  }()

  log.Info().
      Str("ListenAddress", cfg.BindAddress).
      Msg("Starting Prometheus server")

  http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

  if err := http.ListenAndServe(cfg.BindAddress, nil); err != nil {
      log.Fatal().Err(err).Msg("Unable to bind on requested address")
  }
}
