package isp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanHasBothCapabilities(t *testing.T) {
	var buf bytes.Buffer
	h := NewHuman(&buf)
	h.Work()
	h.Eat()
	assert.Equal(t, "human works\nhuman eats\n", buf.String())
}

func TestRobotIsNotEatable(t *testing.T) {
	// The missing capability is a type-level fact, not a runtime error.
	var w Workable = NewRobot(nil)
	_, ok := w.(Eatable)
	assert.False(t, ok)
}

func TestGuestIsNotWorkable(t *testing.T) {
	var e Eatable = NewGuest(nil)
	_, ok := e.(Workable)
	assert.False(t, ok)
}

func TestZeroValueActorsAreUsable(t *testing.T) {
	// Capability methods are failure-free even on values nobody ran a
	// constructor for; the writer defaults at call time.
	h := &Human{}
	assert.NotPanics(t, h.Work)
	assert.NotPanics(t, h.Eat)
	assert.NotPanics(t, (&Robot{}).Work)
	assert.NotPanics(t, (&Guest{}).Eat)
}

func TestStartShift(t *testing.T) {
	var buf bytes.Buffer
	StartShift([]Workable{NewHuman(&buf), NewRobot(&buf)})
	assert.Equal(t, "human works\nrobot works\n", buf.String())
}

func TestServeLunch(t *testing.T) {
	var buf bytes.Buffer
	ServeLunch([]Eatable{NewGuest(&buf), NewHuman(&buf)})
	assert.Equal(t, "guest eats\nhuman eats\n", buf.String())
}
