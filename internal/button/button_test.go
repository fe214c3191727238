package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventString(t *testing.T) {
	assert.Equal(t, "Button was pressed", Event{Pressed: true}.String())
	assert.Equal(t, "Button was released", Event{}.String())
}
