//go:build pi

package button

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Listen watches the button on the given pin and delivers its events until the context is cancelled.
func Listen(ctx context.Context, pin string) (<-chan Event, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	log.Infof("Initializing button handler on %s", pin)
	b := gpioreg.ByName(pin)
	if b == nil {
		return nil, fmt.Errorf("no such pin: %s", pin)
	}
	if err := b.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, err
	}

	c := make(chan Event, 5)
	go handleButton(ctx, b, c)
	return c, nil
}

func handleButton(ctx context.Context, b gpio.PinIO, c chan<- Event) {
	defer close(c)

	last := b.Read()
	for ctx.Err() == nil {
		// wait for the edge
		if !b.WaitForEdge(time.Second) {
			continue
		}

		// debounce
		l := b.Read()
		if l == last {
			continue
		}

		time.Sleep(15 * time.Millisecond)
		if l == b.Read() {
			last = l
			select {
			case c <- Event{Pressed: l == gpio.Low}:
			case <-ctx.Done():
			}
		}
	}
}
