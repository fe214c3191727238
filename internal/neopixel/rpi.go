//go:build pi

package neopixel

import (
	"fmt"

	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

const maxChannels = 2

var stripTypes = map[StripType]int{
	StripGRB: ws.WS2811StripGRB,
	StripRGB: ws.WS2811StripRGB,
	StripRBG: ws.WS2811StripRBG,
	StripGBR: ws.WS2811StripGBR,
	StripBRG: ws.WS2811StripBRG,
	StripBGR: ws.WS2811StripBGR,
}

func newWsEngine(configs []ChannelConfig) (wsEngine, error) {
	if len(configs) > maxChannels {
		return nil, fmt.Errorf("the controller supports %d channels, got %d", maxChannels, len(configs))
	}

	opt := ws.DefaultOptions
	opt.Channels = make([]ws.ChannelOption, len(configs))
	for i, c := range configs {
		ch := ws.DefaultOptions.Channels[0]
		ch.GpioPin = c.Pin
		ch.LedCount = c.LedCount
		ch.Brightness = c.Brightness
		ch.StripeType = stripTypes[c.Type]
		opt.Channels[i] = ch
	}

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	return dev, nil
}
