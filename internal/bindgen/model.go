package bindgen

import (
	"strconv"
	"strings"
)

// Decl is a named type declaration: *Enum, *Record or *Typedef.
type Decl interface {
	DeclName() string
}

// Enum is a C enumeration. Anonymous enums adopted by a typedef take the
// typedef's name.
type Enum struct {
	Name string
	// Fixed is the spelled underlying type of `enum X : T`, if any.
	Fixed     string
	Constants []EnumConst
}

type EnumConst struct {
	Name  string
	Value int64
}

// Record is a struct or union.
type Record struct {
	Name     string
	Union    bool
	Complete bool
	Fields   []Field
	// Synthetic records were never declared: anonymous members or tags only
	// seen through a pointer.
	Synthetic bool
}

// Field is a record member. BitWidth is -1 for ordinary members.
type Field struct {
	Name     string
	CType    string
	BitWidth int
	// Nested is set for members of an anonymous struct or union type.
	Nested *Record
}

type Typedef struct {
	Name  string
	CType string
}

type Function struct {
	Name     string
	Result   string
	Params   []Param
	Variadic bool
}

type Param struct {
	Name  string
	CType string
}

func (e *Enum) DeclName() string    { return e.Name }
func (r *Record) DeclName() string  { return r.Name }
func (t *Typedef) DeclName() string { return t.Name }

// Unit is everything the header declares, in declaration order.
type Unit struct {
	Decls     []Decl
	Functions []*Function
	// Loose holds constants of anonymous enums nobody named.
	Loose  []EnumConst
	Macros []Macro

	byName map[string]Decl
	funcs  map[string]bool
}

// Lookup finds a type declaration by name.
func (u *Unit) Lookup(name string) (Decl, bool) {
	d, ok := u.byName[name]
	return d, ok
}

func (u *Unit) add(d Decl) {
	name := d.DeclName()
	if prev, ok := u.byName[name]; ok {
		// A later definition completes an earlier forward declaration.
		if pr, ok := prev.(*Record); ok {
			if nr, ok := d.(*Record); ok && nr.Complete && !pr.Complete {
				*pr = *nr
			}
		}
		return
	}
	u.byName[name] = d
	u.Decls = append(u.Decls, d)
}

type unitBuilder struct {
	unit *Unit
	// anonymous tags waiting for a typedef to name them, by node id
	pending map[string]Decl
	order   []Decl
}

// BuildUnit flattens a translation unit into declarations.
func BuildUnit(root *Node) *Unit {
	b := &unitBuilder{
		unit:    &Unit{byName: map[string]Decl{}, funcs: map[string]bool{}},
		pending: map[string]Decl{},
	}
	b.walk(root.Inner)

	for _, d := range b.order {
		if d.DeclName() != "" {
			b.unit.add(d)
			continue
		}
		// Unnamed enums contribute their constants; unnamed records are unusable.
		if e, ok := d.(*Enum); ok {
			b.unit.Loose = append(b.unit.Loose, e.Constants...)
		}
	}
	for _, d := range b.unit.Decls {
		if r, ok := d.(*Record); ok {
			nameNested(r)
		}
	}
	return b.unit
}

func (b *unitBuilder) walk(nodes []*Node) {
	for _, n := range nodes {
		if n.IsImplicit {
			continue
		}
		switch n.Kind {
		case "LinkageSpecDecl":
			b.walk(n.Inner)
		case "EnumDecl":
			e := buildEnum(n)
			b.order = append(b.order, e)
			if e.Name == "" {
				b.pending[n.ID] = e
			}
		case "RecordDecl", "CXXRecordDecl":
			r := b.buildRecord(n)
			b.order = append(b.order, r)
			if r.Name == "" {
				b.pending[n.ID] = r
			}
		case "TypedefDecl", "TypeAliasDecl":
			b.typedef(n)
		case "FunctionDecl":
			b.function(n)
		}
	}
}

func (b *unitBuilder) typedef(n *Node) {
	if id := findTagRef(n); id != "" {
		if d, ok := b.pending[id]; ok {
			switch t := d.(type) {
			case *Enum:
				t.Name = n.Name
			case *Record:
				t.Name = n.Name
			}
			delete(b.pending, id)
			return
		}
	}
	target := n.typeSpelling()
	if stripTagKeyword(target) == n.Name {
		return
	}
	b.order = append(b.order, &Typedef{Name: n.Name, CType: target})
}

func (b *unitBuilder) function(n *Node) {
	if b.unit.funcs[n.Name] {
		return
	}
	b.unit.funcs[n.Name] = true

	fn := &Function{Name: n.Name, Result: resultSpelling(n.typeSpelling()), Variadic: n.Variadic}
	for _, c := range n.Inner {
		if c.Kind == "ParmVarDecl" {
			fn.Params = append(fn.Params, Param{Name: c.Name, CType: c.typeSpelling()})
		}
	}
	b.unit.Functions = append(b.unit.Functions, fn)
}

func buildEnum(n *Node) *Enum {
	e := &Enum{Name: n.Name}
	if n.FixedUnderlyingType != nil {
		e.Fixed = n.FixedUnderlyingType.QualType
	}
	next := int64(0)
	for _, c := range n.Inner {
		if c.Kind != "EnumConstantDecl" {
			continue
		}
		v := next
		if len(c.Inner) > 0 {
			if cv, ok := constValue(c); ok {
				v = cv
			}
		}
		e.Constants = append(e.Constants, EnumConst{Name: c.Name, Value: v})
		next = v + 1
	}
	return e
}

func (b *unitBuilder) buildRecord(n *Node) *Record {
	r := &Record{
		Name:     n.Name,
		Union:    n.TagUsed == "union",
		Complete: n.CompleteDefinition,
	}
	var anon *Record
	for _, c := range n.Inner {
		switch c.Kind {
		case "RecordDecl", "CXXRecordDecl":
			if c.IsImplicit {
				continue
			}
			nested := b.buildRecord(c)
			if nested.Name == "" {
				nested.Synthetic = true
				anon = nested
				continue
			}
			b.order = append(b.order, nested)
		case "FieldDecl":
			f := Field{Name: c.Name, CType: c.typeSpelling(), BitWidth: -1}
			if c.IsBitfield {
				if w, ok := constValue(c); ok {
					f.BitWidth = int(w)
				}
			}
			if anon != nil && isAnonymousSpelling(f.CType) {
				f.Nested = anon
				anon = nil
			}
			r.Fields = append(r.Fields, f)
		}
	}
	return r
}

// nameNested gives anonymous member types a name derived from their parent.
func nameNested(r *Record) {
	anon := 0
	for i := range r.Fields {
		f := &r.Fields[i]
		if f.Nested == nil {
			continue
		}
		if f.Name == "" {
			f.Name = "anon" + strconv.Itoa(anon)
			anon++
		}
		f.Nested.Name = r.Name + "_" + f.Name
		f.CType = f.Nested.Name
		nameNested(f.Nested)
	}
}

func isAnonymousSpelling(s string) bool {
	return strings.Contains(s, "(unnamed") || strings.Contains(s, "(anonymous")
}

// resultSpelling cuts the parameter list off a function type spelling.
func resultSpelling(fnType string) string {
	s := strings.TrimSpace(fnType)
	s = strings.TrimSuffix(s, " noexcept")
	if !strings.HasSuffix(s, ")") {
		return s
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[:i])
			}
		}
	}
	return s
}
