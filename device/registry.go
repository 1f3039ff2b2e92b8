package device

import "strings"

// Registry maps a model prefix (the part of the broadcast name before the
// first underscore, e.g. "GVH5075") to the decoder for that model. New
// models only need a new entry here.
type Registry map[string]Decoder

// Lookup resolves the decoder for a device name, or nil if the model is not
// supported.
func (r Registry) Lookup(deviceName string) Decoder {
  prefix, _, _ := strings.Cut(deviceName, "_")

  return r[prefix]
}
