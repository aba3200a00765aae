// Package isp demonstrates capability segregation: Workable and Eatable
// are independent one-method interfaces, and an actor implements only the
// subset it actually uses.
package isp

import (
	"fmt"
	"io"
	"os"
)

// Workable is the working capability.
type Workable interface {
	Work()
}

// Eatable is the eating capability.
type Eatable interface {
	Eat()
}

// Human implements both capabilities.
type Human struct {
	out io.Writer
}

func NewHuman(out io.Writer) *Human { return &Human{out: out} }

func (h *Human) Work() { fmt.Fprintln(orStdout(h.out), "human works") }
func (h *Human) Eat()  { fmt.Fprintln(orStdout(h.out), "human eats") }

// Robot only works; it has no Eat method to stub out or error from.
type Robot struct {
	out io.Writer
}

func NewRobot(out io.Writer) *Robot { return &Robot{out: out} }

func (r *Robot) Work() { fmt.Fprintln(orStdout(r.out), "robot works") }

// Guest only eats.
type Guest struct {
	out io.Writer
}

func NewGuest(out io.Writer) *Guest { return &Guest{out: out} }

func (g *Guest) Eat() { fmt.Fprintln(orStdout(g.out), "guest eats") }

// StartShift puts every workable actor to work; eaters that cannot work
// simply never arrive here.
func StartShift(crew []Workable) {
	for _, w := range crew {
		w.Work()
	}
}

// ServeLunch feeds every eatable actor.
func ServeLunch(diners []Eatable) {
	for _, e := range diners {
		e.Eat()
	}
}

// orStdout is applied when a capability method runs, not at
// construction, so zero values stay usable.
func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

var (
	_ Workable = (*Human)(nil)
	_ Eatable  = (*Human)(nil)
	_ Workable = (*Robot)(nil)
	_ Eatable  = (*Guest)(nil)
)
