//go:build !pi

package neopixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	d, err := Open(ChannelConfig{LedCount: 24}, ChannelConfig{Pin: 13, LedCount: 8, Brightness: 40})
	require.NoError(t, err)
	defer d.Close()

	ring := d.Channel(0)
	require.NotNil(t, ring)
	assert.Equal(t, 24, ring.Len())
	assert.Equal(t, 8, d.Channel(1).Len())
	assert.Nil(t, d.Channel(2))
	assert.Nil(t, d.Channel(-1))

	ring.SetPixel(3, 0xff00ff)
	assert.Equal(t, uint32(0xff00ff), ring.Pixel(3))
	assert.Equal(t, uint32(0), d.Channel(1).Pixel(3), "channels should not share pixels")
	assert.NoError(t, ring.Show())
}

func TestOpen_Invalid(t *testing.T) {
	tt := []struct {
		name    string
		configs []ChannelConfig
	}{
		{"no channels", nil},
		{"no LEDs", []ChannelConfig{{LedCount: 0}}},
		{"negative LEDs", []ChannelConfig{{LedCount: 10}, {LedCount: -1}}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.configs...)
			assert.Error(t, err)
		})
	}
}

func TestChannelDrivesEngine(t *testing.T) {
	d, err := Open(ChannelConfig{LedCount: 6})
	require.NoError(t, err)
	defer d.Close()

	e := New(d.Channel(0), nil)
	e.ConfigureTheaterChase(0xff0000, 0, 0, Forward)
	require.NoError(t, e.Poll(0))

	assert.Equal(t, uint32(0xff0000), d.Channel(0).Pixel(0))
	assert.Equal(t, uint32(0), d.Channel(0).Pixel(1))
	assert.Equal(t, 1, d.ws.(*mockEngine).renders)
}

func TestChannelConfigDefaults(t *testing.T) {
	c := ChannelConfig{LedCount: 3}.withDefaults()
	assert.Equal(t, defaultPin, c.Pin)
	assert.Equal(t, defaultBrightness, c.Brightness)

	c = ChannelConfig{Pin: 12, LedCount: 3, Brightness: 10}.withDefaults()
	assert.Equal(t, 12, c.Pin)
	assert.Equal(t, 10, c.Brightness)
}

func TestParseStripType(t *testing.T) {
	tt := []struct {
		name    string
		want    StripType
		wantErr assert.ErrorAssertionFunc
	}{
		{"", StripGRB, assert.NoError},
		{"grb", StripGRB, assert.NoError},
		{"RGB", StripRGB, assert.NoError},
		{"bgr", StripBGR, assert.NoError},
		{"rgbw", 0, assert.Error},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStripType(tc.name)
			assert.Equal(t, tc.want, got)
			tc.wantErr(t, err)
		})
	}
}
