// Package emit renders navigation methods from a transition table. The output
// is plain declaration code; the caller frames it with a package clause and
// an import block, then runs gofmt over the whole file.
package emit

import (
	"go/types"
	"unicode"
	"unicode/utf8"

	"github.com/msakuta/rotate-enum/internal/codefmt"
	"github.com/msakuta/rotate-enum/internal/rotategen/table"
)

// IteratorName returns the name of the cursor type generated for an enum
// under the iter policy.
func IteratorName(obj *types.TypeName) string {
	return obj.Name() + "Iterator"
}

// ConstructorName returns the name of the function constructing the cursor at
// the first declared variant.
func ConstructorName(obj *types.TypeName) string {
	return "New" + IteratorName(obj)
}

// Write renders the declarations for one enum. The table must cover the
// variants of obj; for the iter policy the iterator names must already be
// reserved in the enclosing package namespace.
func Write(w *codefmt.Writer, obj *types.TypeName, tbl table.Table) {
	switch tbl.Policy() {
	case table.PolicyRotate:
		writeRotate(w, obj, tbl)
	case table.PolicyShift:
		writeShift(w, obj, tbl)
	case table.PolicyIterate:
		writeIterate(w, obj, tbl)
	default:
		panic(codefmt.Sprintf(nil, "unknown policy %s for %s", tbl.Policy(), obj.Name()))
	}
}

// recvName picks a short receiver name that does not collide with a
// package-level name.
func recvName(w *codefmt.Writer, obj *types.TypeName) string {
	r, _ := utf8.DecodeRuneInString(obj.Name())
	return w.Name(string(unicode.ToLower(r)))
}

// writeRotate renders Next and Prev methods that wrap around at the ends of
// the variant sequence. Both methods are total; values outside the declared
// variants are returned unchanged.
func writeRotate(w *codefmt.Writer, obj *types.TypeName, tbl table.Table) {
	recv := recvName(w, obj)

	w.Printf("// Next returns the variant declared after %s, wrapping around past the\n", recv)
	w.Printf("// last one.\n")
	w.Printf("func (%s %o) Next() %o {\n", recv, obj, obj)
	w.Printf("switch %s {\n", recv)
	for v, tr := range tbl.All() {
		w.Printf("case %o:\n", v.Con)
		w.Printf("return %o\n", tr.Next.Con)
	}
	w.Printf("}\n")
	w.Printf("return %s\n", recv)
	w.Printf("}\n\n")

	w.Printf("// Prev returns the variant declared before %s, wrapping around past the\n", recv)
	w.Printf("// first one.\n")
	w.Printf("func (%s %o) Prev() %o {\n", recv, obj, obj)
	w.Printf("switch %s {\n", recv)
	for v, tr := range tbl.All() {
		w.Printf("case %o:\n", v.Con)
		w.Printf("return %o\n", tr.Prev.Con)
	}
	w.Printf("}\n")
	w.Printf("return %s\n", recv)
	w.Printf("}\n")
}

// writeShift renders Next and Prev methods that exhaust at the ends of the
// variant sequence instead of wrapping around.
func writeShift(w *codefmt.Writer, obj *types.TypeName, tbl table.Table) {
	recv := recvName(w, obj)

	w.Printf("// Next returns the variant declared after %s. The second result is false\n", recv)
	w.Printf("// if %s is the last declared variant.\n", recv)
	w.Printf("func (%s %o) Next() (%o, bool) {\n", recv, obj, obj)
	w.Printf("switch %s {\n", recv)
	for v, tr := range tbl.All() {
		w.Printf("case %o:\n", v.Con)
		if tr.Next != nil {
			w.Printf("return %o, true\n", tr.Next.Con)
		} else {
			w.Printf("return %s, false\n", recv)
		}
	}
	w.Printf("}\n")
	w.Printf("return %s, false\n", recv)
	w.Printf("}\n\n")

	w.Printf("// Prev returns the variant declared before %s. The second result is false\n", recv)
	w.Printf("// if %s is the first declared variant.\n", recv)
	w.Printf("func (%s %o) Prev() (%o, bool) {\n", recv, obj, obj)
	w.Printf("switch %s {\n", recv)
	for v, tr := range tbl.All() {
		w.Printf("case %o:\n", v.Con)
		if tr.Prev != nil {
			w.Printf("return %o, true\n", tr.Prev.Con)
		} else {
			w.Printf("return %s, false\n", recv)
		}
	}
	w.Printf("}\n")
	w.Printf("return %s, false\n", recv)
	w.Printf("}\n")
}

// writeIterate renders a cursor type holding either a current variant or an
// exhausted marker, a constructor fixed to the first declared variant, an
// Iter method starting at the receiver, and a range-over-func adapter.
func writeIterate(w *codefmt.Writer, obj *types.TypeName, tbl table.Table) {
	iterName := IteratorName(obj)
	ctorName := ConstructorName(obj)
	recv := recvName(w, obj)
	it := w.Name("it")

	w.Printf("// %s iterates over the variants of %o in declaration order,\n", iterName, obj)
	w.Printf("// starting at a given variant. Once exhausted it stays exhausted.\n")
	w.Printf("type %s struct {\n", iterName)
	w.Printf("cur %o\n", obj)
	w.Printf("done bool\n")
	w.Printf("}\n\n")

	w.Printf("// %s returns an iterator starting at %o, the first declared\n", ctorName, tbl.First().Con)
	w.Printf("// variant.\n")
	w.Printf("func %s() *%s {\n", ctorName, iterName)
	w.Printf("return &%s{cur: %o}\n", iterName, tbl.First().Con)
	w.Printf("}\n\n")

	w.Printf("// Iter returns an iterator starting at %s itself.\n", recv)
	w.Printf("func (%s %o) Iter() *%s {\n", recv, obj, iterName)
	w.Printf("return &%s{cur: %s}\n", iterName, recv)
	w.Printf("}\n\n")

	w.Printf("// Next returns the current variant and advances the iterator. The second\n")
	w.Printf("// result is false once every variant has been returned.\n")
	w.Printf("func (%s *%s) Next() (%o, bool) {\n", it, iterName, obj)
	w.Printf("if %s.done {\n", it)
	w.Printf("return %s.cur, false\n", it)
	w.Printf("}\n")
	w.Printf("v := %s.cur\n", it)
	w.Printf("switch v {\n")
	for v, tr := range tbl.All() {
		if tr.Next == nil {
			continue
		}
		w.Printf("case %o:\n", v.Con)
		w.Printf("%s.cur = %o\n", it, tr.Next.Con)
	}
	w.Printf("default:\n")
	w.Printf("%s.done = true\n", it)
	w.Printf("}\n")
	w.Printf("return v, true\n")
	w.Printf("}\n\n")

	pkgIter := w.Import("iter", "iter")
	w.Printf("// All returns the remaining variants as a sequence usable with range.\n")
	w.Printf("func (%s *%s) All() %s.Seq[%o] {\n", it, iterName, pkgIter, obj)
	w.Printf("return func(yield func(%o) bool) {\n", obj)
	w.Printf("for v, ok := %s.Next(); ok; v, ok = %s.Next() {\n", it, it)
	w.Printf("if !yield(v) {\n")
	w.Printf("return\n")
	w.Printf("}\n")
	w.Printf("}\n")
	w.Printf("}\n")
	w.Printf("}\n")
}
