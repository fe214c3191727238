package neopixel

import "strings"

// Pack combines 8-bit red, green and blue channels into a 0xRRGGBB color.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func Red(color uint32) uint8 {
	return uint8((color >> 16) & 0xff)
}

func Green(color uint32) uint8 {
	return uint8((color >> 8) & 0xff)
}

func Blue(color uint32) uint8 {
	return uint8(color & 0xff)
}

// Dim halves every channel of the color, rounding down.
func Dim(color uint32) uint32 {
	return Pack(Red(color)>>1, Green(color)>>1, Blue(color)>>1)
}

// Wheel maps a position on the color wheel to a color. The transition goes red -> green -> blue -> red, and both 0
// and 255 are pure red.
func Wheel(pos uint8) uint32 {
	pos = 255 - pos
	switch {
	case pos < 85:
		return Pack(255-pos*3, 0, pos*3)
	case pos < 170:
		pos -= 85
		return Pack(0, pos*3, 255-pos*3)
	default:
		pos -= 170
		return Pack(pos*3, 255-pos*3, 0)
	}
}

// Blend linearly interpolates between from and to, where step 0 gives from and step == steps gives to. steps must
// not be zero.
func Blend(from, to uint32, step, steps int) uint32 {
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*(steps-step) + int(b)*step) / steps)
	}
	return Pack(
		mix(Red(from), Red(to)),
		mix(Green(from), Green(to)),
		mix(Blue(from), Blue(to)),
	)
}

type KnownColor int

const (
	ColorRed KnownColor = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
)

var KnownColors = []KnownColor{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}

func (k KnownColor) String() string {
	switch k {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	}
	return "unknown"
}

// Value returns the packed color for k. Anything outside the table is black.
func (k KnownColor) Value() uint32 {
	switch k {
	case ColorRed:
		return Pack(255, 0, 0)
	case ColorOrange:
		return Pack(255, 128, 0)
	case ColorYellow:
		return Pack(255, 255, 0)
	case ColorGreen:
		return Pack(0, 255, 0)
	case ColorBlue:
		return Pack(0, 0, 255)
	case ColorPurple:
		return Pack(128, 0, 128)
	}
	return 0
}

// LookupColor finds the known color with the given name, ignoring case.
func LookupColor(name string) (KnownColor, bool) {
	for _, k := range KnownColors {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return -1, false
}

// ColorByName returns the packed value of a known color, or black if the name is not known.
func ColorByName(name string) uint32 {
	k, _ := LookupColor(name)
	return k.Value()
}
