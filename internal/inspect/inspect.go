// Package inspect loads a Go module and reports which concrete types
// satisfy which capability interfaces, so the relations the library
// promises can be verified against the source itself.
package inspect

import (
	"context"
	"fmt"
	"go/types"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Inspect loads the packages under dir and matches every named type
// against every capability interface found there.
func Inspect(ctx context.Context, dir string, opts Options, logger *slog.Logger) (*Result, error) {
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}
	logger.Info("packages loaded", "packages_count", len(pkgs))

	var caps []Capability
	var impls []Implementer

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		if opts.PkgFilter != "" && !strings.Contains(pkg.PkgPath, opts.PkgFilter) {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			if !tn.Exported() && !opts.IncludeUnexported {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}

			if iface, ok := named.Underlying().(*types.Interface); ok {
				if iface.NumMethods() == 0 {
					continue
				}
				caps = append(caps, Capability{
					Name:    tn.Name(),
					PkgPath: pkg.PkgPath,
					PkgName: pkg.Name,
					Methods: ifaceMethods(iface),
					TypeObj: iface,
				})
				logger.Debug("found capability", "name", tn.Name(), "package", pkg.PkgPath)
				continue
			}

			impls = append(impls, Implementer{
				Name:     tn.Name(),
				PkgPath:  pkg.PkgPath,
				PkgName:  pkg.Name,
				IsStruct: isStruct(named),
				Methods:  namedMethods(named),
				TypeObj:  named,
			})
			logger.Debug("found implementer", "name", tn.Name(), "package", pkg.PkgPath)
		}
	}

	logger.Info("types collected", "capabilities", len(caps), "implementers", len(impls))

	var cache typeutil.MethodSetCache
	var rels []Relation

	for i := range impls {
		imp := &impls[i]
		for j := range caps {
			c := &caps[j]
			switch {
			case satisfies(imp.TypeObj, c.TypeObj, &cache):
				rels = append(rels, Relation{Impl: imp, Capability: c})
			case satisfies(types.NewPointer(imp.TypeObj), c.TypeObj, &cache):
				rels = append(rels, Relation{Impl: imp, Capability: c, ViaPointer: true})
			}
		}
	}

	logger.Info("inspection complete", "relations", len(rels))

	return &Result{Capabilities: caps, Implementers: impls, Relations: rels}, nil
}

// satisfies reports whether t implements iface, falling back to a
// method set lookup for method sets types.Implements rejects on
// package-qualified identity grounds. The fallback requires matching
// signatures, not just matching names.
func satisfies(t types.Type, iface *types.Interface, cache *typeutil.MethodSetCache) bool {
	if types.Implements(t, iface) {
		return true
	}
	mset := cache.MethodSet(t)
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		sel := mset.Lookup(m.Pkg(), m.Name())
		if sel == nil {
			return false
		}
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !sameSignature(fn, m) {
			return false
		}
	}
	return true
}

// sameSignature compares two methods' parameter and result types,
// ignoring the receiver.
func sameSignature(a, b *types.Func) bool {
	sa := a.Type().(*types.Signature)
	sb := b.Type().(*types.Signature)
	if sa.Variadic() != sb.Variadic() ||
		sa.Params().Len() != sb.Params().Len() ||
		sa.Results().Len() != sb.Results().Len() {
		return false
	}
	for i := 0; i < sa.Params().Len(); i++ {
		if !types.Identical(sa.Params().At(i).Type(), sb.Params().At(i).Type()) {
			return false
		}
	}
	for i := 0; i < sa.Results().Len(); i++ {
		if !types.Identical(sa.Results().At(i).Type(), sb.Results().At(i).Type()) {
			return false
		}
	}
	return true
}

func ifaceMethods(iface *types.Interface) []MethodSig {
	out := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		out[i] = MethodSig{Name: m.Name(), Signature: formatSignature(m)}
	}
	return out
}

func namedMethods(named *types.Named) []MethodSig {
	var out []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		out = append(out, MethodSig{Name: m.Name(), Signature: formatSignature(m)})
	}
	return out
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	if results.Len() == 1 {
		b.WriteString(" " + shortType(results.At(0).Type()))
	} else if results.Len() > 1 {
		parts := make([]string, results.Len())
		for i := 0; i < results.Len(); i++ {
			parts[i] = shortType(results.At(i).Type())
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}
