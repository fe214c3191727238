package button

import "fmt"

type Event struct {
	Pressed bool
}

func (e Event) String() string {
	action := "pressed"
	if !e.Pressed {
		action = "released"
	}
	return fmt.Sprintf("Button was %v", action)
}
