package neopixel

import (
	"fmt"
	"time"
)

type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Pattern is one of RainbowCycle, TheaterChase, ColorWipe, Scanner or Fade. Each carries only the parameters that
// apply to it.
type Pattern interface {
	fmt.Stringer
	delay() time.Duration
	direction() Direction
	steps(pixels int) int
}

// RainbowCycle rotates the color wheel across the strip.
type RainbowCycle struct {
	Interval  time.Duration
	Direction Direction
}

// TheaterChase lights every third pixel with Color1 and the rest with Color2, moving one pixel per step.
type TheaterChase struct {
	Color1    uint32
	Color2    uint32
	Interval  time.Duration
	Direction Direction
}

// ColorWipe paints one more pixel with Color per step, leaving the rest of the buffer alone.
type ColorWipe struct {
	Color     uint32
	Interval  time.Duration
	Direction Direction
}

// Scanner bounces a single Color pixel back and forth, leaving a fading tail.
type Scanner struct {
	Color    uint32
	Interval time.Duration
}

// Fade moves the whole strip from Color1 to Color2 in Steps steps. Steps must be larger than zero.
type Fade struct {
	Color1    uint32
	Color2    uint32
	Steps     int
	Interval  time.Duration
	Direction Direction
}

func (p RainbowCycle) delay() time.Duration { return p.Interval }
func (p TheaterChase) delay() time.Duration { return p.Interval }
func (p ColorWipe) delay() time.Duration    { return p.Interval }
func (p Scanner) delay() time.Duration      { return p.Interval }
func (p Fade) delay() time.Duration         { return p.Interval }

func (p RainbowCycle) direction() Direction { return p.Direction }
func (p TheaterChase) direction() Direction { return p.Direction }
func (p ColorWipe) direction() Direction    { return p.Direction }
func (p Scanner) direction() Direction      { return Forward }
func (p Fade) direction() Direction         { return p.Direction }

func (p RainbowCycle) steps(_ int) int      { return 255 }
func (p TheaterChase) steps(pixels int) int { return pixels }
func (p ColorWipe) steps(pixels int) int    { return pixels }
func (p Scanner) steps(pixels int) int      { return (pixels - 1) * 2 }
func (p Fade) steps(_ int) int              { return p.Steps }

func (p RainbowCycle) String() string {
	return fmt.Sprintf("rainbow cycle (%v, %v)", p.Interval, p.Direction)
}

func (p TheaterChase) String() string {
	return fmt.Sprintf("theater chase %06x/%06x (%v, %v)", p.Color1, p.Color2, p.Interval, p.Direction)
}

func (p ColorWipe) String() string {
	return fmt.Sprintf("color wipe %06x (%v, %v)", p.Color, p.Interval, p.Direction)
}

func (p Scanner) String() string {
	return fmt.Sprintf("scanner %06x (%v)", p.Color, p.Interval)
}

func (p Fade) String() string {
	return fmt.Sprintf("fade %06x -> %06x in %d steps (%v, %v)", p.Color1, p.Color2, p.Steps, p.Interval, p.Direction)
}
