package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertof/go-govee-exporter/device"
)

func TestAllowListAdd(t *testing.T) {
	a := device.AllowList{}
	require.NoError(t, a.Add("GVH5075_ABCD=Living Room"))
	require.NoError(t, a.Add("GVH5072_EFGH"))
	assert.Equal(t, device.AllowList{
		"GVH5075_ABCD": "Living Room",
		"GVH5072_EFGH": "GVH5072_EFGH",
	}, a)
}

func TestAllowListAdd_Duplicate(t *testing.T) {
	a := device.AllowList{}
	require.NoError(t, a.Add("GVH5075_ABCD=Living Room"))
	assert.Error(t, a.Add("GVH5075_ABCD=Office"))
}

func TestAllowListAdd_Empty(t *testing.T) {
	a := device.AllowList{}
	assert.Error(t, a.Add(""))
	assert.Error(t, a.Add("=Living Room"))
}

func TestAllowListResolve_Empty(t *testing.T) {
	a := device.AllowList{}
	label, ok := a.Resolve("GVH5075_ABCD")
	require.True(t, ok)
	assert.Equal(t, "GVH5075_ABCD", label)
}

func TestAllowListResolve(t *testing.T) {
	a := device.AllowList{"GVH5075_ABCD": "Living Room"}

	label, ok := a.Resolve("GVH5075_ABCD")
	require.True(t, ok)
	assert.Equal(t, "Living Room", label)

	_, ok = a.Resolve("GVH5075_WXYZ")
	assert.False(t, ok)
}

func TestAllowListEntries(t *testing.T) {
	a := device.AllowList{
		"GVH5075_ABCD": "Living Room",
		"GVH5072_EFGH": "GVH5072_EFGH",
	}
	entries := a.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "GVH5072_EFGH", entries[0].String())
	assert.Equal(t, "GVH5075_ABCD=Living Room", entries[1].String())
}
