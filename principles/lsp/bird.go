// Package lsp demonstrates substitutability: flight is a capability only
// the variants that truly have it declare, so no bird ever satisfies
// Flyer and then fails when asked to fly.
package lsp

import (
	"fmt"
	"io"
	"os"
)

// Bird is the capability every variant has.
type Bird interface {
	Name() string
}

// Flyer is satisfied only by flight-capable variants. Fly has no failure
// mode; any value of this type can be flown unconditionally.
type Flyer interface {
	Bird
	Fly()
}

// FlyingBird carries the flight capability shared by all flying variants.
type FlyingBird struct {
	name string
	out  io.Writer
}

func (b FlyingBird) Name() string {
	if b.name == "" {
		return "flying bird"
	}
	return b.name
}

// Fly is total: the writer is resolved at call time so even a zero
// value flies instead of failing.
func (b FlyingBird) Fly() {
	fmt.Fprintf(orStdout(b.out), "%s flies away\n", b.Name())
}

// Sparrow is a flight-capable bird.
type Sparrow struct{ FlyingBird }

func NewSparrow(out io.Writer) Sparrow {
	return Sparrow{FlyingBird{name: "sparrow", out: out}}
}

// Swallow is a flight-capable bird.
type Swallow struct{ FlyingBird }

func NewSwallow(out io.Writer) Swallow {
	return Swallow{FlyingBird{name: "swallow", out: out}}
}

// Penguin is a bird with no flight capability. It does not carry a Fly
// method at all, so handing it to flight-only code is a compile error
// rather than a runtime one.
type Penguin struct {
	out io.Writer
}

func NewPenguin(out io.Writer) Penguin {
	return Penguin{out: out}
}

func (Penguin) Name() string { return "penguin" }

func (p Penguin) Swim() {
	fmt.Fprintln(orStdout(p.out), "penguin swims instead")
}

// LaunchAll flies every member of the flock.
func LaunchAll(flock []Flyer) {
	for _, f := range flock {
		f.Fly()
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
	_ Flyer = Sparrow{}
	_ Flyer = Swallow{}
	_ Bird  = Penguin{}
)
