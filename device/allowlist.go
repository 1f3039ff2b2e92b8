package device

import (
  "fmt"
  "sort"
  "strings"
)

// AllowList maps device broadcast names to display labels. An empty allow
// list accepts every supported device.
type AllowList map[string]string

type AllowListEntry struct {
  Device, Label string
}

func (e AllowListEntry) String() string {
  if e.Label == e.Device {
    return e.Device
  }

  return e.Device + "=" + e.Label
}

// Add parses a "DEVICE" or "DEVICE=LABEL" argument into the allow list. The
// label defaults to the device name.
func (a AllowList) Add(arg string) error {
  deviceName, label, found := strings.Cut(arg, "=")

  if !found || label == "" {
    label = deviceName
  }

  if deviceName == "" {
    return fmt.Errorf("invalid device argument %q", arg)
  }

  if _, ok := a[deviceName]; ok {
    return fmt.Errorf("device %q specified more than once", deviceName)
  }

  a[deviceName] = label

  return nil
}

// Resolve returns the display label for a device and whether the device
// passes the allow list. An empty allow list accepts everything, with the
// device name as its label.
func (a AllowList) Resolve(deviceName string) (label string, ok bool) {
  if label, ok := a[deviceName]; ok {
    return label, true
  }

  if len(a) == 0 {
    return deviceName, true
  }

  return "", false
}

// Entries returns the configured devices sorted by name, for logging.
func (a AllowList) Entries() []AllowListEntry {
  entries := make([]AllowListEntry, 0, len(a))

  for deviceName, label := range a {
    entries = append(entries, AllowListEntry{Device: deviceName, Label: label})
  }

  sort.Slice(entries, func(i, j int) bool {
    return entries[i].Device < entries[j].Device
  })

  return entries
}
