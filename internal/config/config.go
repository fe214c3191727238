package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/callebjorkell/neopatterns/internal/neopixel"
	"github.com/callebjorkell/neopatterns/internal/player"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	defaultTick     = 5
	defaultInterval = 50
)

type Config struct {
	// Tick is the polling period of the main loop in milliseconds.
	Tick   int     `yaml:"tick"`
	Button string  `yaml:"button"`
	Strips []Strip `yaml:"strips"`
}

type Strip struct {
	Name       string    `yaml:"name"`
	Pin        int       `yaml:"pin"`
	Leds       int       `yaml:"leds"`
	Brightness int       `yaml:"brightness"`
	Type       string    `yaml:"type"`
	OnComplete string    `yaml:"onComplete"`
	Patterns   []Pattern `yaml:"patterns"`
}

type Pattern struct {
	Type      string `yaml:"type"`
	Interval  int    `yaml:"interval"`
	Direction string `yaml:"direction"`
	Color1    string `yaml:"color1"`
	Color2    string `yaml:"color2"`
	Steps     int    `yaml:"steps"`
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Tick) * time.Millisecond
}

func Read(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Tick <= 0 {
		c.Tick = defaultTick
	}
	if len(c.Strips) == 0 {
		return nil, fmt.Errorf("at least one strip must be configured")
	}
	for i, strip := range c.Strips {
		if strip.Name == "" {
			c.Strips[i].Name = fmt.Sprintf("strip-%d", i)
		}
		if strip.Leds <= 0 {
			return nil, fmt.Errorf("number of leds must be specified for strip %d", i)
		}
		if _, err := neopixel.ParseStripType(strip.Type); err != nil {
			return nil, fmt.Errorf("strip %d: %w", i, err)
		}
		if _, err := player.ParseAction(strip.OnComplete); err != nil {
			return nil, fmt.Errorf("strip %d: %w", i, err)
		}
		if len(strip.Patterns) == 0 {
			return nil, fmt.Errorf("at least one pattern must be specified for strip %d", i)
		}
		for j, p := range strip.Patterns {
			if p.Interval <= 0 {
				c.Strips[i].Patterns[j].Interval = defaultInterval
			}
			if _, err := p.Pattern(); err != nil {
				return nil, fmt.Errorf("strip %d, pattern %d: %w", i, j, err)
			}
		}
	}

	return c, nil
}

// Channel returns the LED controller settings for the strip.
func (s Strip) Channel() (neopixel.ChannelConfig, error) {
	t, err := neopixel.ParseStripType(s.Type)
	if err != nil {
		return neopixel.ChannelConfig{}, err
	}
	return neopixel.ChannelConfig{
		Pin:        s.Pin,
		LedCount:   s.Leds,
		Brightness: s.Brightness,
		Type:       t,
	}, nil
}

func (s Strip) Playlist() ([]neopixel.Pattern, error) {
	patterns := make([]neopixel.Pattern, 0, len(s.Patterns))
	for i, p := range s.Patterns {
		pattern, err := p.Pattern()
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// Pattern converts the entry into the pattern it describes.
func (p Pattern) Pattern() (neopixel.Pattern, error) {
	dir, err := parseDirection(p.Direction)
	if err != nil {
		return nil, err
	}
	color1, err := ParseColor(p.Color1)
	if err != nil {
		return nil, fmt.Errorf("color1: %w", err)
	}
	color2, err := ParseColor(p.Color2)
	if err != nil {
		return nil, fmt.Errorf("color2: %w", err)
	}
	interval := time.Duration(p.Interval) * time.Millisecond

	switch strings.ToLower(p.Type) {
	case "rainbow", "rainbow-cycle":
		return neopixel.RainbowCycle{Interval: interval, Direction: dir}, nil
	case "theater-chase":
		return neopixel.TheaterChase{Color1: color1, Color2: color2, Interval: interval, Direction: dir}, nil
	case "color-wipe":
		return neopixel.ColorWipe{Color: color1, Interval: interval, Direction: dir}, nil
	case "scanner":
		return neopixel.Scanner{Color: color1, Interval: interval}, nil
	case "fade":
		if p.Steps <= 0 {
			return nil, fmt.Errorf("fade needs a positive number of steps")
		}
		return neopixel.Fade{Color1: color1, Color2: color2, Steps: p.Steps, Interval: interval, Direction: dir}, nil
	case "":
		return nil, fmt.Errorf("pattern type is missing")
	}
	return nil, fmt.Errorf("unknown pattern type %q", p.Type)
}

// ParseColor accepts either a known color name or a hex color like #ff8000. An empty string is black.
func ParseColor(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	if k, ok := neopixel.LookupColor(s); ok {
		return k.Value(), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return neopixel.Pack(c.RGB255()), nil
}

func parseDirection(s string) (neopixel.Direction, error) {
	switch strings.ToLower(s) {
	case "", "forward":
		return neopixel.Forward, nil
	case "reverse":
		return neopixel.Reverse, nil
	}
	return neopixel.Forward, fmt.Errorf("unknown direction %q", s)
}
