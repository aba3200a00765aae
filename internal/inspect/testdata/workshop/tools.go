package workshop

type Cutter interface {
	Cut() string
}

type Joiner interface {
	Join() string
}

type Saw struct{}

func (Saw) Cut() string { return "saw cuts" }

type Glue struct{}

// pointer receiver: only *Glue satisfies Joiner
func (g *Glue) Join() string { return "glue joins" }

type Clamp struct{} // satisfies nothing

type Torch struct{}

// same name as Cutter's method, different signature
func (Torch) Cut(depth int) string { return "torch cuts" }

type hidden struct{} // unexported, excluded by default

func (hidden) Cut() string { return "hidden cut" }
