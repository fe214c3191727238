//go:build !pi

package neopixel

import (
	log "github.com/sirupsen/logrus"
)

// mockEngine keeps the LEDs in memory and logs every render.
type mockEngine struct {
	channels [][]uint32
	renders  int
}

func (d *mockEngine) Init() error {
	log.Info("neopixel: using in-memory LEDs")
	return nil
}

func (d *mockEngine) Render() error {
	d.renders++
	if log.IsLevelEnabled(log.TraceLevel) {
		for i, c := range d.channels {
			log.Tracef("neopixel: render %d channel %d: %06x", d.renders, i, c)
		}
	}
	return nil
}

func (d *mockEngine) Wait() error {
	return nil
}

func (d *mockEngine) Fini() {
	log.Debugf("neopixel: closed after %d renders", d.renders)
}

func (d *mockEngine) Leds(channel int) []uint32 {
	return d.channels[channel]
}

func newWsEngine(configs []ChannelConfig) (wsEngine, error) {
	m := &mockEngine{}
	for _, c := range configs {
		m.channels = append(m.channels, make([]uint32, c.LedCount))
	}
	return m, nil
}
