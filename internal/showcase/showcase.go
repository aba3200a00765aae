// Package showcase runs the principle demonstrations against a writer.
package showcase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/adansuku/solidgo/principles/dip"
	"github.com/adansuku/solidgo/principles/isp"
	"github.com/adansuku/solidgo/principles/lsp"
	"github.com/adansuku/solidgo/principles/ocp"
	"github.com/adansuku/solidgo/principles/srp"
)

// Runner is one principle demonstration.
type Runner struct {
	Name string
	Desc string
	Run  func(w io.Writer) error
}

// All returns the five demonstrations in canonical order. The OCP
// demonstration formats one report through every format in formats,
// resolved against reg.
func All(reg *ocp.Registry, formats []string) []Runner {
	return []Runner{
		{
			Name: "single-responsibility",
			Desc: "one arithmetic operation per component",
			Run:  runArithmetic,
		},
		{
			Name: "open-closed",
			Desc: "report formats extend without modification",
			Run:  func(w io.Writer) error { return runReports(w, reg, formats) },
		},
		{
			Name: "liskov-substitution",
			Desc: "only flight-capable birds are flown",
			Run:  runBirds,
		},
		{
			Name: "interface-segregation",
			Desc: "actors implement only the capabilities they use",
			Run:  runWorkers,
		},
		{
			Name: "dependency-inversion",
			Desc: "one switch drives any switchable device",
			Run:  runSwitches,
		},
	}
}

// RunAll executes every runner in order, writing demonstrations to w.
// It keeps going past individual failures and returns them joined.
func RunAll(w io.Writer, runners []Runner, logger *slog.Logger) error {
	var errs []error
	for _, r := range runners {
		logger.Info("running showcase", "name", r.Name)
		fmt.Fprintf(w, "== %s: %s ==\n", r.Name, r.Desc)
		if err := r.Run(w); err != nil {
			logger.Error("showcase failed", "name", r.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, err))
			continue
		}
		fmt.Fprintln(w)
		logger.Debug("showcase done", "name", r.Name)
	}
	return errors.Join(errs...)
}

func runArithmetic(w io.Writer) error {
	fmt.Fprintf(w, "Add(2, 3) = %g\n", srp.Adder{}.Add(2, 3))
	fmt.Fprintf(w, "Subtract(5, 3) = %g\n", srp.Subtractor{}.Subtract(5, 3))
	fmt.Fprintf(w, "Multiply(4, 3) = %g\n", srp.Multiplier{}.Multiply(4, 3))

	q, err := srp.Divider{}.Divide(10, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Divide(10, 4) = %g\n", q)

	// The one failure mode in the whole library, surfaced to the caller.
	if _, err := (srp.Divider{}).Divide(10, 0); errors.Is(err, srp.ErrDivisionByZero) {
		fmt.Fprintf(w, "Divide(10, 0) -> %v\n", err)
	}
	return nil
}

func runReports(w io.Writer, reg *ocp.Registry, formats []string) error {
	report := ocp.NewGenerator().Generate(
		"Workshop Notes",
		"Principles stay *small*: one capability per interface.",
	)
	for _, name := range formats {
		out, err := reg.Format(report, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "format %q -> %d bytes\n", name, len(out))
	}
	return nil
}

func runBirds(w io.Writer) error {
	lsp.LaunchAll([]lsp.Flyer{lsp.NewSparrow(w), lsp.NewSwallow(w)})
	lsp.NewPenguin(w).Swim()
	return nil
}

func runWorkers(w io.Writer) error {
	isp.StartShift([]isp.Workable{isp.NewHuman(w), isp.NewRobot(w)})
	isp.ServeLunch([]isp.Eatable{isp.NewGuest(w)})
	return nil
}

func runSwitches(w io.Writer) error {
	// Same switch type, different devices behind the abstraction.
	dip.NewSwitch(dip.NewLightBulb(w)).Operate()
	dip.NewSwitch(dip.NewFan(w)).Operate()
	return nil
}
