package bindgen

import "strconv"

type layout struct {
	size  int64
	align int64
}

func alignUp(off, align int64) int64 {
	if align <= 1 {
		return off
	}
	return (off + align - 1) / align * align
}

// structItem is one Go field of a struct: an ordinary member or a storage
// unit holding adjacent bitfields.
type structItem struct {
	field *Field
	unit  *bitUnit
}

type bitUnit struct {
	name    string
	bits    int
	members []bitMember
}

type bitMember struct {
	field  *Field
	offset int
}

func (u *bitUnit) goType() string {
	return "uint" + strconv.Itoa(u.bits)
}

// structItems groups consecutive bitfields of the same storage size into
// units, starting a new unit when a member does not fit. A zero-width
// bitfield closes the current unit.
func (e *emitter) structItems(r *Record) []structItem {
	var items []structItem
	var cur *bitUnit
	used, n := 0, 0
	for i := range r.Fields {
		f := &r.Fields[i]
		if f.BitWidth < 0 {
			cur = nil
			items = append(items, structItem{field: f})
			continue
		}
		if f.BitWidth == 0 {
			cur = nil
			continue
		}
		bits := int(e.fieldLayout(f).size * 8)
		switch bits {
		case 8, 16, 32, 64:
		default:
			bits = 32
		}
		if cur == nil || cur.bits != bits || used+f.BitWidth > bits {
			n++
			cur = &bitUnit{name: "Bitfield" + strconv.Itoa(n), bits: bits}
			items = append(items, structItem{unit: cur})
			used = 0
		}
		cur.members = append(cur.members, bitMember{field: f, offset: used})
		used += f.BitWidth
	}
	return items
}

func (e *emitter) fieldLayout(f *Field) layout {
	if f.Nested != nil {
		return e.recordLayout(f.Nested)
	}
	return e.typeLayout(parseCType(f.CType))
}

func (e *emitter) typeLayout(t cType) layout {
	var elem layout
	switch {
	case t.FuncPtr || t.Ptr > 0:
		elem = layout{8, 8}
	default:
		elem = e.baseLayout(t.Base)
	}
	n := int64(1)
	for _, d := range t.Dims {
		if d < 0 {
			d = 0
		}
		n *= d
	}
	return layout{elem.size * n, elem.align}
}

func (e *emitter) baseLayout(name string) layout {
	if b, ok := builtins[name]; ok {
		if b.Size == 0 {
			return layout{0, 1}
		}
		return layout{b.Size, b.Size}
	}
	d, _ := e.unit.Lookup(name)
	switch d := d.(type) {
	case *Enum:
		s := enumSize(d)
		return layout{s, s}
	case *Typedef:
		return e.typeLayout(parseCType(d.CType))
	case *Record:
		return e.recordLayout(d)
	}
	return layout{0, 1}
}

func (e *emitter) recordLayout(r *Record) layout {
	if l, ok := e.layouts[r]; ok {
		return l
	}
	// Placeholder breaks self-referential lookups; members only refer to
	// themselves through pointers.
	e.layouts[r] = layout{0, 1}

	l := layout{0, 1}
	switch {
	case !r.Complete:
	case r.Union:
		for i := range r.Fields {
			fl := e.fieldLayout(&r.Fields[i])
			l.size = max(l.size, fl.size)
			l.align = max(l.align, fl.align)
		}
		l.size = alignUp(l.size, l.align)
	default:
		var off int64
		for _, it := range e.structItems(r) {
			var fl layout
			if it.unit != nil {
				b := int64(it.unit.bits / 8)
				fl = layout{b, b}
			} else {
				fl = e.fieldLayout(it.field)
			}
			off = alignUp(off, fl.align) + fl.size
			l.align = max(l.align, fl.align)
		}
		l.size = alignUp(off, l.align)
	}
	e.layouts[r] = l
	return l
}
