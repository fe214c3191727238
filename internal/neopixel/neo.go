package neopixel

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	defaultBrightness = 255
	defaultPin        = 18
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// StripType is the order the LEDs expect the color channels in.
type StripType int

const (
	StripGRB StripType = iota
	StripRGB
	StripRBG
	StripGBR
	StripBRG
	StripBGR
)

var stripTypeNames = map[string]StripType{
	"grb": StripGRB,
	"rgb": StripRGB,
	"rbg": StripRBG,
	"gbr": StripGBR,
	"brg": StripBRG,
	"bgr": StripBGR,
}

func ParseStripType(name string) (StripType, error) {
	if name == "" {
		return StripGRB, nil
	}
	t, ok := stripTypeNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown strip type %q", name)
	}
	return t, nil
}

// ChannelConfig describes one strip attached to the LED controller.
type ChannelConfig struct {
	Pin        int
	LedCount   int
	Brightness int
	Type       StripType
}

func (c ChannelConfig) withDefaults() ChannelConfig {
	if c.Pin == 0 {
		c.Pin = defaultPin
	}
	if c.Brightness <= 0 {
		c.Brightness = defaultBrightness
	}
	return c
}

// Device owns the LED controller and hands out one Strip per configured channel.
type Device struct {
	ws       wsEngine
	channels []*Channel
}

// Open initializes the LED controller with one channel per config.
func Open(configs ...ChannelConfig) (*Device, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("at least one channel is needed")
	}
	channels := make([]ChannelConfig, len(configs))
	for i, c := range configs {
		if c.LedCount <= 0 {
			return nil, fmt.Errorf("channel %d needs at least one LED", i)
		}
		channels[i] = c.withDefaults()
	}

	ws, err := newWsEngine(channels)
	if err != nil {
		return nil, fmt.Errorf("unable to create LED controller: %w", err)
	}
	if err := ws.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize LED controller: %w", err)
	}

	d := &Device{ws: ws}
	for i, c := range channels {
		log.Infof("Channel %d: %d LEDs on pin %d", i, c.LedCount, c.Pin)
		d.channels = append(d.channels, &Channel{ws: ws, channel: i})
	}
	return d, nil
}

// Channel returns the strip on channel i, or nil if there is no such channel.
func (d *Device) Channel(i int) *Channel {
	if i < 0 || i >= len(d.channels) {
		return nil
	}
	return d.channels[i]
}

func (d *Device) Close() {
	log.Debug("Closing LED controller")
	d.ws.Fini()
}

// Channel is a Strip backed by one channel of the LED controller. Show renders the whole controller, so channels that
// share it are sent out together.
type Channel struct {
	ws      wsEngine
	channel int
}

func (c *Channel) SetPixel(index int, color uint32) {
	c.ws.Leds(c.channel)[index] = color
}

func (c *Channel) Pixel(index int) uint32 {
	return c.ws.Leds(c.channel)[index]
}

func (c *Channel) Len() int {
	return len(c.ws.Leds(c.channel))
}

func (c *Channel) Show() error {
	return c.ws.Render()
}
