package inspect

import "go/types"

// Capability describes a discovered capability interface.
type Capability struct {
	Name    string
	PkgPath string
	PkgName string
	Methods []MethodSig
	TypeObj *types.Interface
}

// Implementer describes a discovered named concrete type.
type Implementer struct {
	Name     string
	PkgPath  string
	PkgName  string
	IsStruct bool
	Methods  []MethodSig
	TypeObj  *types.Named
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation captures that a concrete type satisfies a capability.
type Relation struct {
	Impl       *Implementer
	Capability *Capability
	ViaPointer bool // true if only *T (not T) satisfies the capability
}

// Result holds the complete inspection output.
type Result struct {
	Capabilities []Capability
	Implementers []Implementer
	Relations    []Relation
}

// Options controls inspection behavior.
type Options struct {
	PkgFilter         string // import path substring filter, empty matches all
	IncludeUnexported bool
}
