package bindgen

import (
	"bytes"
	"fmt"
	"go/token"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samcharles93/cupti/internal/logger"
)

// Stats counts what one emission produced.
type Stats struct {
	Functions    int
	Types        int
	Dependencies int
	Constants    int
	Blocked      int
	Skipped      int
}

type emitter struct {
	unit   *Unit
	filter *Filter
	policy TraitPolicy
	log    logger.Logger

	marked  map[string]TraitSet
	opaque  []string
	funcs   []*Function
	layouts map[*Record]layout
	idents  map[string]bool

	body       bytes.Buffer
	needUnsafe bool
	needConv   bool
	needNoCopy bool
	stats      Stats
}

// Emit renders the admitted declarations of unit, and the types they depend
// on, as unformatted Go source.
func Emit(unit *Unit, spec *BindingSpec, log logger.Logger) ([]byte, Stats, error) {
	filter, err := NewFilter(spec.Allow, spec.BlockFunctions)
	if err != nil {
		return nil, Stats{}, err
	}
	if log == nil {
		log = logger.Discard()
	}
	e := &emitter{
		unit:    unit,
		filter:  filter,
		policy:  spec.Traits,
		log:     log,
		marked:  map[string]TraitSet{},
		layouts: map[*Record]layout{},
		idents:  map[string]bool{},
	}
	e.selectDecls()
	e.emitTypes()
	e.emitConstants()
	e.emitFunctions()

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by xtask regenerate from %s; DO NOT EDIT.\n\n", filepath.Base(spec.Header))
	fmt.Fprintf(&out, "package %s\n\n", spec.PackageName())
	var imports []string
	if e.needConv {
		imports = append(imports, "strconv")
	}
	if e.needUnsafe {
		imports = append(imports, "unsafe")
	}
	if len(imports) > 0 {
		out.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(&out, "\t%q\n", imp)
		}
		out.WriteString(")\n\n")
	}
	out.Write(e.body.Bytes())
	return out.Bytes(), e.stats, nil
}

func (e *emitter) selectDecls() {
	var queue []string
	for _, d := range e.unit.Decls {
		name := d.DeclName()
		if e.filter.Allowed(name) {
			e.marked[name] = AllTraits
			queue = append(queue, name)
		}
	}
	for _, fn := range e.unit.Functions {
		if !e.filter.Allowed(fn.Name) {
			continue
		}
		if e.filter.Blocked(fn.Name) {
			e.stats.Blocked++
			e.log.Debug("function blocked", "name", fn.Name)
			continue
		}
		if fn.Variadic {
			e.stats.Skipped++
			e.log.Warn("skipping variadic function", "name", fn.Name)
			continue
		}
		e.funcs = append(e.funcs, fn)
		e.require(fn.Result, &queue)
		for _, p := range fn.Params {
			e.require(p.CType, &queue)
		}
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		d, _ := e.unit.Lookup(name)
		switch d := d.(type) {
		case *Typedef:
			e.require(d.CType, &queue)
		case *Record:
			e.requireFields(d, &queue)
		}
	}
	sort.Strings(e.opaque)
	for name := range e.marked {
		e.idents[name] = true
	}
}

func (e *emitter) requireFields(r *Record, queue *[]string) {
	for i := range r.Fields {
		f := &r.Fields[i]
		if f.Nested != nil {
			e.requireFields(f.Nested, queue)
			continue
		}
		e.require(f.CType, queue)
	}
}

// require marks the type a spelling names as a dependency.
func (e *emitter) require(spelling string, queue *[]string) {
	name, ok := parseCType(spelling).namedRef()
	if !ok {
		return
	}
	if _, seen := e.marked[name]; seen {
		return
	}
	e.marked[name] = e.policy.For(name)
	if _, declared := e.unit.Lookup(name); !declared {
		e.log.Warn("type referenced but never declared, emitting opaque", "type", name)
		e.opaque = append(e.opaque, name)
		return
	}
	e.stats.Dependencies++
	*queue = append(*queue, name)
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.body, format, args...)
}

func (e *emitter) emitTypes() {
	for _, d := range e.unit.Decls {
		traits, ok := e.marked[d.DeclName()]
		if !ok {
			continue
		}
		if e.filter.Allowed(d.DeclName()) {
			e.stats.Types++
		}
		switch d := d.(type) {
		case *Enum:
			e.emitEnum(d, traits)
		case *Record:
			e.emitRecord(d, traits)
		case *Typedef:
			e.emitTypedef(d)
		}
	}
	for _, name := range e.opaque {
		e.printf("type %s struct{ _ [0]byte }\n\n", name)
	}
	if e.needNoCopy {
		e.printf("// noCopy may be embedded in structs which must not be copied after first use.\n")
		e.printf("type noCopy struct{}\n\n")
		e.printf("func (*noCopy) Lock()   {}\n")
		e.printf("func (*noCopy) Unlock() {}\n\n")
	}
}

// goType maps a C type spelling to a Go type expression. The empty string
// means void.
func (e *emitter) goType(spelling string) string {
	return e.goExpr(parseCType(spelling))
}

func (e *emitter) goExpr(t cType) string {
	ptr := t.Ptr
	var s string
	switch b, ok := t.builtin(); {
	case t.FuncPtr:
		s, ptr = "uintptr", 0
	case ok && b.Go == "":
		if ptr == 0 {
			return ""
		}
		e.needUnsafe = true
		s, ptr = "unsafe.Pointer", ptr-1
	case ok:
		s = b.Go
	default:
		s = t.Base
	}
	s = strings.Repeat("*", ptr) + s
	var dims strings.Builder
	for _, d := range t.Dims {
		if d < 0 {
			d = 0
		}
		fmt.Fprintf(&dims, "[%d]", d)
	}
	return dims.String() + s
}

func (e *emitter) emitEnum(en *Enum, traits TraitSet) {
	under := enumUnderlying(en)
	signed := strings.HasPrefix(under, "int")
	e.printf("type %s %s\n\n", en.Name, under)

	var consts []EnumConst
	for _, c := range en.Constants {
		if e.idents[c.Name] {
			e.log.Warn("duplicate identifier, skipping enum constant", "enum", en.Name, "name", c.Name)
			continue
		}
		e.idents[c.Name] = true
		consts = append(consts, c)
	}
	if len(consts) > 0 {
		e.printf("const (\n")
		for _, c := range consts {
			e.printf("\t%s %s = %s\n", c.Name, en.Name, formatValue(c.Value, signed))
		}
		e.printf(")\n\n")
		e.stats.Constants += len(consts)
	}
	if !traits.Debug {
		return
	}

	e.needConv = true
	e.printf("func (v %s) String() string {\n", en.Name)
	seen := map[int64]bool{}
	var cases []EnumConst
	for _, c := range consts {
		if !seen[c.Value] {
			seen[c.Value] = true
			cases = append(cases, c)
		}
	}
	if len(cases) > 0 {
		e.printf("\tswitch v {\n")
		for _, c := range cases {
			e.printf("\tcase %s:\n\t\treturn %q\n", c.Name, c.Name)
		}
		e.printf("\t}\n")
	}
	if signed {
		e.printf("\treturn %q + strconv.FormatInt(int64(v), 10) + \")\"\n}\n\n", en.Name+"(")
	} else {
		e.printf("\treturn %q + strconv.FormatUint(uint64(v), 10) + \")\"\n}\n\n", en.Name+"(")
	}
}

func formatValue(v int64, signed bool) string {
	if signed {
		return strconv.FormatInt(v, 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// enumUnderlying picks the narrowest of uint32, int32, uint64 and int64 that
// holds every constant, unless the enum fixes its own type.
func enumUnderlying(en *Enum) string {
	if en.Fixed != "" {
		if b, ok := parseCType(en.Fixed).builtin(); ok && b.Go != "" && b.Go != "bool" {
			return b.Go
		}
	}
	neg, wide := false, false
	for _, c := range en.Constants {
		if c.Value < 0 {
			neg = true
		}
		if c.Value > math.MaxUint32 || c.Value < math.MinInt32 {
			wide = true
		}
	}
	if neg {
		for _, c := range en.Constants {
			if c.Value > math.MaxInt32 {
				wide = true
			}
		}
	}
	switch {
	case neg && wide:
		return "int64"
	case neg:
		return "int32"
	case wide:
		return "uint64"
	}
	return "uint32"
}

func enumSize(en *Enum) int64 {
	switch enumUnderlying(en) {
	case "int8", "uint8", "byte":
		return 1
	case "int16", "uint16":
		return 2
	case "int64", "uint64", "int", "uintptr":
		return 8
	}
	return 4
}

func (e *emitter) emitTypedef(td *Typedef) {
	expr := e.goType(td.CType)
	if expr == "" || expr == td.Name {
		e.log.Debug("skipping typedef without a Go equivalent", "name", td.Name, "type", td.CType)
		return
	}
	e.printf("type %s = %s\n\n", td.Name, expr)
}

func (e *emitter) emitRecord(r *Record, traits TraitSet) {
	if !r.Complete {
		e.printf("type %s struct{ _ [0]byte }\n\n", r.Name)
		return
	}
	for i := range r.Fields {
		if n := r.Fields[i].Nested; n != nil {
			e.emitRecord(n, traits)
		}
	}
	if r.Union {
		e.emitUnion(r, traits)
	} else {
		e.emitStruct(r, traits)
	}
	// A constructor returns by value, which a noCopy type cannot allow.
	if traits.Default && traits.Copy {
		e.emitDefault(r)
	}
}

func (e *emitter) noCopyField(traits TraitSet) {
	if !traits.Copy {
		e.needNoCopy = true
		e.printf("\t_ noCopy\n")
	}
}

func (e *emitter) emitStruct(r *Record, traits TraitSet) {
	items := e.structItems(r)
	e.printf("type %s struct {\n", r.Name)
	e.noCopyField(traits)
	for _, it := range items {
		if it.unit != nil {
			e.printf("\t%s %s\n", it.unit.name, it.unit.goType())
			continue
		}
		e.printf("\t%s %s\n", exported(it.field.Name), e.goType(it.field.CType))
	}
	e.printf("}\n\n")

	for _, it := range items {
		if it.unit == nil {
			continue
		}
		for _, m := range it.unit.members {
			e.emitBitfield(r.Name, it.unit, m)
		}
	}
}

func (e *emitter) emitBitfield(rec string, u *bitUnit, m bitMember) {
	name := exported(m.field.Name)
	store := "r." + u.name
	mask := "0x" + strconv.FormatUint(bitMask(m.field.BitWidth), 16)
	typ := e.goType(m.field.CType)

	if typ == "bool" {
		e.printf("func (r *%s) %s() bool { return (%s>>%d)&%s != 0 }\n\n", rec, name, store, m.offset, mask)
		e.printf("func (r *%s) Set%s(v bool) {\n\tvar b %s\n\tif v {\n\t\tb = 1\n\t}\n", rec, name, u.goType())
		e.printf("\t%s = %s&^(%s<<%d) | b<<%d\n}\n\n", store, store, mask, m.offset, m.offset)
		return
	}
	e.printf("func (r *%s) %s() %s { return %s((%s >> %d) & %s) }\n\n", rec, name, typ, typ, store, m.offset, mask)
	e.printf("func (r *%s) Set%s(v %s) {\n", rec, name, typ)
	e.printf("\t%s = %s&^(%s<<%d) | (%s(v)&%s)<<%d\n}\n\n", store, store, mask, m.offset, u.goType(), mask, m.offset)
}

func bitMask(width int) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}
	return uint64(1)<<width - 1
}

func (e *emitter) emitUnion(r *Record, traits TraitSet) {
	l := e.recordLayout(r)
	word := max(min(l.align, 8), 1)
	e.needUnsafe = true
	e.printf("type %s struct {\n", r.Name)
	e.noCopyField(traits)
	e.printf("\traw [%d]%s\n}\n\n", l.size/word, wordType(word))
	for i := range r.Fields {
		f := &r.Fields[i]
		typ := e.goType(f.CType)
		e.printf("func (u *%s) %s() *%s { return (*%s)(unsafe.Pointer(&u.raw)) }\n\n", r.Name, exported(f.Name), typ, typ)
	}
}

func wordType(size int64) string {
	switch size {
	case 8:
		return "uint64"
	case 4:
		return "uint32"
	case 2:
		return "uint16"
	}
	return "uint8"
}

// emitDefault writes a zero-value constructor. Members named structSize are
// set to the size of the struct, as CUPTI parameter blocks require.
func (e *emitter) emitDefault(r *Record) {
	e.printf("// Default%s returns a zeroed %s", r.Name, r.Name)
	var size *Field
	if !r.Union {
		for i := range r.Fields {
			if f := &r.Fields[i]; f.Name == "structSize" && f.BitWidth < 0 {
				size = f
			}
		}
	}
	if size == nil {
		e.printf(".\nfunc Default%s() %s { return %s{} }\n\n", r.Name, r.Name, r.Name)
		return
	}
	e.needUnsafe = true
	e.printf(" with StructSize set.\nfunc Default%s() %s {\n\tvar v %s\n", r.Name, r.Name, r.Name)
	e.printf("\tv.StructSize = %s(unsafe.Sizeof(v))\n\treturn v\n}\n\n", e.goType(size.CType))
}

func (e *emitter) emitConstants() {
	type named struct{ name, value string }
	var consts []named
	for _, c := range e.unit.Loose {
		if e.filter.Allowed(c.Name) && !e.idents[c.Name] {
			e.idents[c.Name] = true
			consts = append(consts, named{c.Name, strconv.FormatInt(c.Value, 10)})
		}
	}
	for _, m := range e.unit.Macros {
		if e.filter.Allowed(m.Name) && !e.idents[m.Name] {
			e.idents[m.Name] = true
			consts = append(consts, named{m.Name, m.Value})
		}
	}
	if len(consts) == 0 {
		return
	}
	e.printf("const (\n")
	for _, c := range consts {
		e.printf("\t%s = %s\n", c.name, c.value)
	}
	e.printf(")\n\n")
	e.stats.Constants += len(consts)
}

func (e *emitter) emitFunctions() {
	e.printf("// Function pairs a C symbol with the variable its implementation is bound to.\n")
	e.printf("type Function struct {\n\tName string\n\tPtr  any\n}\n\n")

	vars := make([]string, len(e.funcs))
	if len(e.funcs) > 0 {
		e.printf("var (\n")
		for i, fn := range e.funcs {
			name := exported(fn.Name)
			if e.idents[name] {
				name += "Fn"
			}
			e.idents[name] = true
			vars[i] = name
			e.printf("\t%s func(%s)", name, e.params(fn))
			if res := e.goType(fn.Result); res != "" {
				e.printf(" %s", res)
			}
			e.printf("\n")
		}
		e.printf(")\n\n")
	}
	e.stats.Functions = len(e.funcs)

	e.printf("// Functions lists every bound function variable by symbol.\n")
	e.printf("var Functions = []Function{\n")
	for i, fn := range e.funcs {
		e.printf("\t{Name: %q, Ptr: &%s},\n", fn.Name, vars[i])
	}
	e.printf("}\n")
}

func (e *emitter) params(fn *Function) string {
	taken := map[string]bool{}
	parts := make([]string, 0, len(fn.Params))
	for i, p := range fn.Params {
		name := p.Name
		if name == "" {
			name = "arg" + strconv.Itoa(i)
		}
		for token.IsKeyword(name) || e.idents[name] || taken[name] || isPredeclared(name) {
			name += "_"
		}
		taken[name] = true
		parts = append(parts, name+" "+e.goType(p.CType))
	}
	return strings.Join(parts, ", ")
}

func isPredeclared(name string) bool {
	if _, ok := builtins[name]; ok {
		return true
	}
	switch name {
	case "string", "int", "uint", "byte", "rune", "error", "any", "len", "cap", "new", "make", "nil", "true", "false", "unsafe":
		return true
	}
	return false
}

func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
