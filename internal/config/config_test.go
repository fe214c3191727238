package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/callebjorkell/neopatterns/internal/neopixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = `
tick: 2
button: GPIO20
strips:
  - name: ring
    pin: 18
    leds: 24
    brightness: 128
    type: rgb
    onComplete: next
    patterns:
      - type: rainbow
        interval: 20
        direction: reverse
      - type: theater-chase
        interval: 100
        color1: orange
        color2: "#000040"
      - type: fade
        interval: 10
        color1: red
        color2: blue
        steps: 64
  - leds: 8
    patterns:
      - type: scanner
        color1: "#ff0000"
      - type: color-wipe
        color1: Purple
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(exampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Millisecond, c.TickInterval())
	assert.Equal(t, "GPIO20", c.Button)
	require.Len(t, c.Strips, 2)

	ring := c.Strips[0]
	assert.Equal(t, "ring", ring.Name)
	assert.Equal(t, "next", ring.OnComplete)
	ch, err := ring.Channel()
	require.NoError(t, err)
	assert.Equal(t, neopixel.ChannelConfig{Pin: 18, LedCount: 24, Brightness: 128, Type: neopixel.StripRGB}, ch)

	playlist, err := ring.Playlist()
	require.NoError(t, err)
	assert.Equal(t, []neopixel.Pattern{
		neopixel.RainbowCycle{Interval: 20 * time.Millisecond, Direction: neopixel.Reverse},
		neopixel.TheaterChase{Color1: 0xff8000, Color2: 0x000040, Interval: 100 * time.Millisecond},
		neopixel.Fade{Color1: 0xff0000, Color2: 0x0000ff, Steps: 64, Interval: 10 * time.Millisecond},
	}, playlist)
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(exampleConfig))
	require.NoError(t, err)

	second := c.Strips[1]
	assert.Equal(t, "strip-1", second.Name)
	assert.Equal(t, defaultInterval, second.Patterns[0].Interval)

	ch, err := second.Channel()
	require.NoError(t, err)
	assert.Equal(t, neopixel.StripGRB, ch.Type)

	playlist, err := second.Playlist()
	require.NoError(t, err)
	assert.Equal(t, []neopixel.Pattern{
		neopixel.Scanner{Color: 0xff0000, Interval: defaultInterval * time.Millisecond},
		neopixel.ColorWipe{Color: 0x800080, Interval: defaultInterval * time.Millisecond},
	}, playlist)

	c, err = Parse([]byte("strips: [{leds: 1, patterns: [{type: rainbow}]}]"))
	require.NoError(t, err)
	assert.Equal(t, defaultTick, c.Tick)
}

func TestParse_Invalid(t *testing.T) {
	tt := []struct {
		name    string
		content string
		err     string
	}{
		{
			"not yaml",
			"strips: [",
			"",
		},
		{
			"no strips",
			"tick: 5",
			"at least one strip must be configured",
		},
		{
			"no leds",
			"strips: [{patterns: [{type: rainbow}]}]",
			"number of leds must be specified for strip 0",
		},
		{
			"bad strip type",
			"strips: [{leds: 3, type: rgbw, patterns: [{type: rainbow}]}]",
			`strip 0: unknown strip type "rgbw"`,
		},
		{
			"bad completion action",
			"strips: [{leds: 3, onComplete: explode, patterns: [{type: rainbow}]}]",
			`strip 0: unknown completion action "explode"`,
		},
		{
			"no patterns",
			"strips: [{leds: 3}]",
			"at least one pattern must be specified for strip 0",
		},
		{
			"unknown pattern",
			"strips: [{leds: 3, patterns: [{type: rainbow}, {type: sparkle}]}]",
			`strip 0, pattern 1: unknown pattern type "sparkle"`,
		},
		{
			"missing pattern type",
			"strips: [{leds: 3, patterns: [{interval: 5}]}]",
			"strip 0, pattern 0: pattern type is missing",
		},
		{
			"fade without steps",
			"strips: [{leds: 3, patterns: [{type: fade, color1: red}]}]",
			"strip 0, pattern 0: fade needs a positive number of steps",
		},
		{
			"bad direction",
			"strips: [{leds: 3, patterns: [{type: rainbow, direction: sideways}]}]",
			`strip 0, pattern 0: unknown direction "sideways"`,
		},
		{
			"bad color",
			"strips: [{leds: 3, patterns: [{type: color-wipe, color1: pink}]}]",
			`strip 0, pattern 0: color1: invalid color "pink"`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse([]byte(tc.content))
			assert.Nil(t, c)
			require.Error(t, err)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tt := []struct {
		input   string
		want    uint32
		wantErr assert.ErrorAssertionFunc
	}{
		{"", 0, assert.NoError},
		{"red", 0xff0000, assert.NoError},
		{"YELLOW", 0xffff00, assert.NoError},
		{"#123456", 0x123456, assert.NoError},
		{"#FFFFFF", 0xffffff, assert.NoError},
		{"123456", 0, assert.Error},
		{"pink", 0, assert.Error},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseColor(tc.input)
			assert.Equal(t, tc.want, got)
			tc.wantErr(t, err)
		})
	}
}

func TestRead(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	filename := filepath.Join(tmpDir, "neopatterns.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(exampleConfig), 0644))

	c, err := Read(filename)
	require.NoError(t, err)
	assert.Len(t, c.Strips, 2)

	_, err = Read(filepath.Join(tmpDir, "missing.yaml"))
	assert.Error(t, err)
}
