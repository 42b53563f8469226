package toolkit

// DirectiveKind is the instruction a Directive gives the build.
type DirectiveKind string

const (
	LinkSearch        DirectiveKind = "link-search"
	LinkLib           DirectiveKind = "link-lib"
	RerunIfEnvChanged DirectiveKind = "rerun-if-env-changed"
	RerunIfChanged    DirectiveKind = "rerun-if-changed"
)

// Directive is one line of build output.
type Directive struct {
	Kind  DirectiveKind `json:"kind"`
	Value string        `json:"value"`
}

func (d Directive) String() string {
	return string(d.Kind) + "=" + d.Value
}

// Directives flattens the plan: search paths in order, the single link
// directive, then the invalidation triggers.
func (p Plan) Directives() []Directive {
	out := make([]Directive, 0, len(p.Search)+1+len(p.Watch)+len(p.WatchFiles))
	for _, c := range p.Search {
		out = append(out, Directive{Kind: LinkSearch, Value: "native=" + c.Dir})
	}
	out = append(out, Directive{Kind: LinkLib, Value: "dylib=" + p.Library})
	for _, v := range p.Watch {
		out = append(out, Directive{Kind: RerunIfEnvChanged, Value: v})
	}
	for _, f := range p.WatchFiles {
		out = append(out, Directive{Kind: RerunIfChanged, Value: f})
	}
	return out
}

// LDFlags renders the link part of the plan as linker flags.
func (p Plan) LDFlags() []string {
	flags := make([]string, 0, len(p.Search)+1)
	for _, c := range p.Search {
		flags = append(flags, "-L"+c.Dir)
	}
	return append(flags, "-l"+p.Library)
}
