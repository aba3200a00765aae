// Package dip demonstrates dependency inversion: a switch drives any
// device through the Switchable abstraction, never a concrete device type.
package dip

import (
	"fmt"
	"io"
	"os"
)

// Switchable is the capability a switch depends on. Neither method has a
// failure mode.
type Switchable interface {
	TurnOn()
	TurnOff()
}

// LightBulb is a switchable device.
type LightBulb struct {
	out io.Writer
}

func NewLightBulb(out io.Writer) *LightBulb { return &LightBulb{out: out} }

func (l *LightBulb) TurnOn()  { fmt.Fprintln(orStdout(l.out), "light bulb: on") }
func (l *LightBulb) TurnOff() { fmt.Fprintln(orStdout(l.out), "light bulb: off") }

// Fan is a switchable device.
type Fan struct {
	out io.Writer
}

func NewFan(out io.Writer) *Fan { return &Fan{out: out} }

func (f *Fan) TurnOn()  { fmt.Fprintln(orStdout(f.out), "fan: spinning") }
func (f *Fan) TurnOff() { fmt.Fprintln(orStdout(f.out), "fan: stopped") }

// Switch holds a borrowed reference to one Switchable device. It never
// constructs or tears down the device itself.
type Switch struct {
	device Switchable
}

func NewSwitch(device Switchable) *Switch {
	return &Switch{device: device}
}

// Operate turns the held device on.
func (s *Switch) Operate() {
	s.device.TurnOn()
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
	_ Switchable = (*LightBulb)(nil)
	_ Switchable = (*Fan)(nil)
)
