// Package diagram renders inspection results as Mermaid class diagrams.
package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adansuku/solidgo/internal/inspect"
)

// Options controls Mermaid diagram generation.
type Options struct {
	IncludeInit bool // include %%{init:}%% directive for standalone .mmd files
}

// Mermaid produces a Mermaid classDiagram string from an inspection
// result. Output is deterministic: every section is sorted by
// (package, name).
func Mermaid(result *inspect.Result, opts Options) string {
	caps := make([]inspect.Capability, len(result.Capabilities))
	copy(caps, result.Capabilities)
	sort.Slice(caps, func(i, j int) bool {
		if caps[i].PkgName != caps[j].PkgName {
			return caps[i].PkgName < caps[j].PkgName
		}
		return caps[i].Name < caps[j].Name
	})

	impls := make([]inspect.Implementer, len(result.Implementers))
	copy(impls, result.Implementers)
	sort.Slice(impls, func(i, j int) bool {
		if impls[i].PkgName != impls[j].PkgName {
			return impls[i].PkgName < impls[j].PkgName
		}
		return impls[i].Name < impls[j].Name
	})

	rels := make([]inspect.Relation, len(result.Relations))
	copy(rels, result.Relations)
	sort.Slice(rels, func(i, j int) bool {
		ki := NodeID(rels[i].Impl.PkgName, rels[i].Impl.Name)
		kj := NodeID(rels[j].Impl.PkgName, rels[j].Impl.Name)
		if ki != kj {
			return ki < kj
		}
		return NodeID(rels[i].Capability.PkgName, rels[i].Capability.Name) <
			NodeID(rels[j].Capability.PkgName, rels[j].Capability.Name)
	})

	var b strings.Builder
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(caps) > 0 || len(impls) > 0 {
		b.WriteString("\n    direction LR\n")
		b.WriteString("    classDef capabilityStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
	}

	for _, c := range caps {
		b.WriteString("\n")
		writeCapabilityBlock(&b, c)
	}

	if len(caps) > 0 && len(impls) > 0 {
		b.WriteString("\n")
	}
	for _, imp := range impls {
		b.WriteString("\n")
		writeImplementerBlock(&b, imp)
	}

	if (len(caps) > 0 || len(impls) > 0) && len(rels) > 0 {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		fmt.Fprintf(&b, "\n    %s --|> %s",
			NodeID(rel.Impl.PkgName, rel.Impl.Name),
			NodeID(rel.Capability.PkgName, rel.Capability.Name))
	}

	if len(caps) > 0 || len(impls) > 0 {
		b.WriteString("\n")
		for _, c := range caps {
			fmt.Fprintf(&b, "\n    cssClass \"%s\" capabilityStyle", NodeID(c.PkgName, c.Name))
		}
		for _, imp := range impls {
			fmt.Fprintf(&b, "\n    cssClass \"%s\" implStyle", NodeID(imp.PkgName, imp.Name))
		}
	}

	return b.String()
}

// writeCapabilityBlock writes a Mermaid class block for a capability
// interface, listing its methods.
func writeCapabilityBlock(b *strings.Builder, c inspect.Capability) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(c.PkgName, c.Name))
	b.WriteString("        <<interface>>\n")
	for _, m := range c.Methods {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(m.Signature))
	}
	b.WriteString("    }")
}

// writeImplementerBlock writes a Mermaid class block for a concrete type.
// Methods are omitted: they already appear on the capability blocks the
// type realizes.
func writeImplementerBlock(b *strings.Builder, imp inspect.Implementer) {
	fmt.Fprintf(b, "    class %s {\n    }", NodeID(imp.PkgName, imp.Name))
}

// SanitizeSignature removes characters in method signatures that break
// Mermaid syntax. Mermaid treats {}, <>, and ~ as special in class
// diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// "interface" is a reserved word in browser Mermaid.js, so rewrite
	// interface{} before stripping the remaining empty braces.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// NodeID builds a sanitized node ID from a package name and type name.
func NodeID(pkgName, name string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(pkgName + "_" + name)
}
