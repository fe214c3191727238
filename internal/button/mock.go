//go:build !pi

package button

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// Listen simulates a button. Every SIGHUP is delivered as a press.
func Listen(ctx context.Context, _ string) (<-chan Event, error) {
	log.Infoln("Initializing button handler, send SIGHUP to press")

	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)

	c := make(chan Event, 5)
	go simulateButton(ctx, hupChan, c)
	return c, nil
}

func simulateButton(ctx context.Context, hupChan chan os.Signal, c chan<- Event) {
	defer signal.Stop(hupChan)
	defer close(c)

	for {
		select {
		case <-hupChan:
			select {
			case c <- Event{Pressed: true}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
