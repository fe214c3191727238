package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/callebjorkell/neopatterns/internal/button"
	"github.com/callebjorkell/neopatterns/internal/neopixel"
	log "github.com/sirupsen/logrus"
)

// Action is what a track does when its pattern completes a cycle.
type Action int

const (
	Continue Action = iota
	Next
	Reverse
)

func (a Action) String() string {
	switch a {
	case Next:
		return "next"
	case Reverse:
		return "reverse"
	}
	return "none"
}

func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return Continue, nil
	case "next":
		return Next, nil
	case "reverse":
		return Reverse, nil
	}
	return Continue, fmt.Errorf("unknown completion action %q", s)
}

// Track plays a list of patterns on one strip.
type Track struct {
	Name     string
	engine   *neopixel.Engine
	playlist []neopixel.Pattern
	current  int
	action   Action
	cycles   int
}

// NewTrack starts the first pattern of the playlist on the strip.
func NewTrack(name string, strip neopixel.Strip, playlist []neopixel.Pattern, action Action) *Track {
	t := &Track{
		Name:     name,
		playlist: playlist,
		action:   action,
	}
	t.engine = neopixel.New(strip, t.completed)
	if len(playlist) > 0 {
		t.play(0)
	}
	return t
}

func (t *Track) Engine() *neopixel.Engine {
	return t.engine
}

// Cycles is the number of completed pattern cycles.
func (t *Track) Cycles() int {
	return t.cycles
}

// Current is the index of the running pattern in the playlist.
func (t *Track) Current() int {
	return t.current
}

// Next switches to the following pattern, starting over after the last one.
func (t *Track) Next() {
	if len(t.playlist) == 0 {
		return
	}
	t.play((t.current + 1) % len(t.playlist))
}

func (t *Track) Poll(now uint32) error {
	return t.engine.Poll(now)
}

// Clear stops the track and turns the strip off.
func (t *Track) Clear() error {
	t.engine.Stop()
	return t.engine.ColorSet(0)
}

func (t *Track) play(i int) {
	t.current = i
	log.Infof("%s: playing %v", t.Name, t.playlist[i])
	t.engine.Configure(t.playlist[i])
}

func (t *Track) completed() {
	t.cycles++
	switch t.action {
	case Next:
		t.Next()
	case Reverse:
		t.engine.Reverse()
	}
}

// Player drives any number of tracks from a single loop.
type Player struct {
	tracks []*Track
}

func New(tracks ...*Track) *Player {
	return &Player{tracks: tracks}
}

func (p *Player) Tracks() []*Track {
	return p.tracks
}

// Poll gives every track a chance to render. A failing strip is logged and does not hold up the others.
func (p *Player) Poll(now uint32) {
	for _, t := range p.tracks {
		if err := t.Poll(now); err != nil {
			log.WithField("strip", t.Name).Warn("Unable to render frame: ", err)
		}
	}
}

func (p *Player) Next() {
	for _, t := range p.tracks {
		t.Next()
	}
}

// Run polls the tracks every tick until the context is cancelled, and moves every track to its next pattern when the
// button is pressed. All strips are cleared before returning.
func (p *Player) Run(ctx context.Context, clock neopixel.Clock, tick time.Duration, events <-chan button.Event) {
	if tick <= 0 {
		tick = time.Millisecond
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	defer p.clear()

	log.Infof("Running %d strips every %v", len(p.tracks), tick)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping player")
			return
		case e, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			log.Debugf("Event: %v", e)
			if e.Pressed {
				p.Next()
			}
		case <-t.C:
			p.Poll(clock.Millis())
		}
	}
}

func (p *Player) clear() {
	for _, t := range p.tracks {
		if err := t.Clear(); err != nil {
			log.WithField("strip", t.Name).Warn("Unable to clear strip: ", err)
		}
	}
}
