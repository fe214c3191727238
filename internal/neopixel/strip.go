package neopixel

import "time"

// Strip is the pixel buffer of a single LED strip. Pixels are packed 0xRRGGBB colors, and nothing is sent to the
// LEDs until Show is called.
type Strip interface {
	SetPixel(index int, color uint32)
	Pixel(index int) uint32
	Len() int
	Show() error
}

// Clock is a monotonic millisecond source. The value is allowed to wrap around.
type Clock interface {
	Millis() uint32
}

type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the milliseconds elapsed since the clock was created, modulo 2^32.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
