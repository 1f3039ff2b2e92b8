package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/robertof/go-govee-exporter/device"
)

type config struct {
  Debug, Trace bool
  BindAddress string
  LogFile string
  EnableMetamonitoring bool
  DiscoverDevices bool
  BluetoothDeviceId int
  PollInterval time.Duration
  Devices device.AllowList
}

func ParseArgs() config {
  var cfg config

  cfg.Devices = device.AllowList{}

  flag.StringVar(&cfg.BindAddress, "bind", ":9889", "Where the exporter will bind to")
  flag.IntVar(&cfg.BluetoothDeviceId, "bluetooth-device", 0, "Bluetooth (HCI) device ID")
  flag.BoolVar(&cfg.DiscoverDevices, "discover", false, "Discover available BLE devices and quit")
  flag.BoolVar(&cfg.EnableMetamonitoring, "metamonitoring", true, "Enable metamonitoring metrics")
  flag.DurationVar(&cfg.PollInterval, "interval", 30 * time.Second,
    "How long each discovery window runs before being restarted")
  flag.StringVar(&cfg.LogFile, "log-file", "", "Append logs to this file instead of standard error")
  flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logs")
  flag.BoolVar(&cfg.Trace, "trace", false, "Enable trace logs")

  flag.Usage = usage
  flag.Parse()

  for _, arg := range flag.Args() {
    if err := cfg.Devices.Add(arg); err != nil {
      fmt.Fprintf(os.Stderr, "Error: %v\n", err)
      flag.Usage()
      os.Exit(1)
    }
  }

  if cfg.PollInterval <= 0 {
    fmt.Fprintln(os.Stderr, "Error: the poll interval must be positive!")
    flag.Usage()
    os.Exit(1)
  }

  return cfg
}

func usage() {
  fmt.Fprintf(flag.CommandLine.Output(),
    "Usage: %s [flags] [DEVICE[=LABEL]...]\n\n"+
      "Devices are Govee broadcast names, e.g. \"GVH5075_ABCD=Living Room\".\n"+
      "With no devices, every supported device found is exported.\n\nFlags:\n",
    os.Args[0])

  flag.PrintDefaults()
}
