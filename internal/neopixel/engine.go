package neopixel

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Engine runs one pattern on one strip. It never blocks: the caller polls it as often as it likes, and a frame is
// only rendered once the pattern interval has passed.
//
// An Engine is not safe for concurrent use. All calls are expected to come from the same polling loop.
type Engine struct {
	strip      Strip
	onComplete func()

	pattern    Pattern
	direction  Direction
	delay      uint32
	lastUpdate uint32
	// scheduled is false until the first frame after Configure records a baseline.
	scheduled bool

	color1     uint32
	color2     uint32
	totalSteps int
	index      int
}

// New creates an engine for the strip. onComplete is called every time a pattern finishes a cycle, and may be nil.
func New(strip Strip, onComplete func()) *Engine {
	return &Engine{
		strip:      strip,
		onComplete: onComplete,
	}
}

// Configure replaces whatever is running with p. Nothing is drawn until the next Poll. A nil pattern stops the engine.
func (e *Engine) Configure(p Pattern) {
	if p == nil {
		e.Stop()
		return
	}

	e.pattern = p
	e.delay = uint32(p.delay() / time.Millisecond)
	e.direction = p.direction()
	e.totalSteps = p.steps(e.strip.Len())
	e.scheduled = false

	switch p := p.(type) {
	case TheaterChase:
		e.color1, e.color2 = p.Color1, p.Color2
	case ColorWipe:
		e.color1, e.color2 = p.Color, 0
	case Scanner:
		e.color1, e.color2 = p.Color, 0
	case Fade:
		e.color1, e.color2 = p.Color1, p.Color2
	default:
		e.color1, e.color2 = 0, 0
	}

	e.index = 0
	if e.direction == Reverse {
		e.index = e.totalSteps - 1
	}

	log.Debugf("Configured %v with %d steps", p, e.totalSteps)
}

func (e *Engine) ConfigureRainbowCycle(interval time.Duration, dir Direction) {
	e.Configure(RainbowCycle{Interval: interval, Direction: dir})
}

func (e *Engine) ConfigureTheaterChase(color1, color2 uint32, interval time.Duration, dir Direction) {
	e.Configure(TheaterChase{Color1: color1, Color2: color2, Interval: interval, Direction: dir})
}

func (e *Engine) ConfigureColorWipe(color uint32, interval time.Duration, dir Direction) {
	e.Configure(ColorWipe{Color: color, Interval: interval, Direction: dir})
}

func (e *Engine) ConfigureScanner(color uint32, interval time.Duration) {
	e.Configure(Scanner{Color: color, Interval: interval})
}

func (e *Engine) ConfigureFade(color1, color2 uint32, steps int, interval time.Duration, dir Direction) {
	e.Configure(Fade{Color1: color1, Color2: color2, Steps: steps, Interval: interval, Direction: dir})
}

// Stop discards the running pattern. The strip keeps whatever it last showed.
func (e *Engine) Stop() {
	e.pattern = nil
	e.scheduled = false
}

// Poll renders the next frame if the pattern interval has elapsed since the previous one. now is a millisecond
// timestamp from a Clock; a single wrap around between two polls is handled. The returned error comes from the
// strip, and the pattern advances regardless.
func (e *Engine) Poll(now uint32) error {
	if e.pattern == nil {
		return nil
	}
	if e.scheduled && now-e.lastUpdate < e.delay {
		return nil
	}
	e.lastUpdate = now
	e.scheduled = true

	switch e.pattern.(type) {
	case RainbowCycle:
		return e.rainbowCycle()
	case TheaterChase:
		return e.theaterChase()
	case ColorWipe:
		return e.colorWipe()
	case Scanner:
		return e.scanner()
	case Fade:
		return e.fade()
	}
	return nil
}

// Reverse flips the direction and restarts the cycle from the far end.
func (e *Engine) Reverse() {
	if e.direction == Forward {
		e.direction = Reverse
		e.index = e.totalSteps - 1
	} else {
		e.direction = Forward
		e.index = 0
	}
	log.Debugf("Direction is now %v", e.direction)
}

// ColorSet fills the strip with a single color and shows it right away.
func (e *Engine) ColorSet(color uint32) error {
	for i := 0; i < e.strip.Len(); i++ {
		e.strip.SetPixel(i, color)
	}
	return e.strip.Show()
}

// Pattern returns the running pattern, or nil if nothing runs.
func (e *Engine) Pattern() Pattern {
	return e.pattern
}

func (e *Engine) Direction() Direction {
	return e.direction
}

func (e *Engine) Step() int {
	return e.index
}

func (e *Engine) TotalSteps() int {
	return e.totalSteps
}

// advance moves one step in the current direction and calls onComplete when the cycle wraps. In reverse, the wrap
// happens when step 0 is reached, not when it is passed.
func (e *Engine) advance() {
	if e.direction == Forward {
		e.index++
		if e.index >= e.totalSteps {
			e.index = 0
			e.complete()
		}
		return
	}

	e.index--
	if e.index <= 0 {
		e.index = e.totalSteps - 1
		e.complete()
	}
}

func (e *Engine) complete() {
	log.Debugf("Cycle of %v complete", e.pattern)
	if e.onComplete != nil {
		e.onComplete()
	}
}

// show pushes the frame and moves on to the next step.
func (e *Engine) show() error {
	err := e.strip.Show()
	e.advance()
	return err
}

func (e *Engine) rainbowCycle() error {
	n := e.strip.Len()
	for i := 0; i < n; i++ {
		e.strip.SetPixel(i, Wheel(uint8((i*256/n+e.index)&255)))
	}
	return e.show()
}

func (e *Engine) theaterChase() error {
	for i := 0; i < e.strip.Len(); i++ {
		if (i+e.index)%3 == 0 {
			e.strip.SetPixel(i, e.color1)
		} else {
			e.strip.SetPixel(i, e.color2)
		}
	}
	return e.show()
}

func (e *Engine) colorWipe() error {
	e.strip.SetPixel(e.index, e.color1)
	return e.show()
}

func (e *Engine) scanner() error {
	for i := 0; i < e.strip.Len(); i++ {
		switch i {
		case e.index, e.totalSteps - e.index:
			e.strip.SetPixel(i, e.color1)
		default:
			e.strip.SetPixel(i, Dim(e.strip.Pixel(i)))
		}
	}
	return e.show()
}

func (e *Engine) fade() error {
	c := Blend(e.color1, e.color2, e.index, e.totalSteps)
	for i := 0; i < e.strip.Len(); i++ {
		e.strip.SetPixel(i, c)
	}
	return e.show()
}
