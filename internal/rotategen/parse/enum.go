package parse

import (
	"go/types"
	"slices"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/msakuta/rotate-enum/internal/codefmt"
)

// collectVariants returns the variants of the enum declared by obj: the
// package-level constants of exactly that type, in declaration order.
//
// obj must be a named type whose underlying type is basic, and at least one
// constant of the type must exist; otherwise the type has no enum shape and a
// positioned error is returned. Two constants sharing one value are rejected
// as well because the generated switch statements need every case value to
// select a distinct variant.
func (p *Parser) collectVariants(obj *types.TypeName) ([]*types.Const, error) {
	if _, ok := obj.Type().Underlying().(*types.Basic); !ok {
		return nil, codefmt.Errorf(p, obj,
			"%o must be an enum (a named type with constant values); underlying type is %t",
			obj, obj.Type().Underlying())
	}

	consts := p.constsOf(obj.Type())
	if len(consts) == 0 {
		return nil, codefmt.Errorf(p, obj, "enum %o has no constants", obj)
	}

	byValue := make(map[string]*types.Const, len(consts))
	for _, con := range consts {
		key := con.Val().ExactString()
		if first, ok := byValue[key]; ok {
			return nil, codefmt.Errorf(p, con,
				"%o has the same value as %o (declared at %b); enum variants must have distinct values",
				con, first, first.Pos())
		}
		byValue[key] = con
	}

	return consts, nil
}

// constsOf returns the package-level constants of the given type in
// declaration order.
func (p *Parser) constsOf(typ types.Type) []*types.Const {
	if p.consts == nil {
		p.consts = p.groupConsts()
	}

	consts, _ := p.consts.At(typ).([]*types.Const)
	return consts
}

// groupConsts scans the package scope once and groups its constants by type.
func (p *Parser) groupConsts() *typeutil.Map {
	m := new(typeutil.Map)

	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		con, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		consts, _ := m.At(con.Type()).([]*types.Const)
		m.Set(con.Type(), append(consts, con))
	}

	// Scope names come sorted alphabetically; restore declaration order.
	for _, typ := range m.Keys() {
		consts := m.At(typ).([]*types.Const)
		slices.SortFunc(consts, func(a, b *types.Const) int {
			return int(a.Pos() - b.Pos())
		})
		m.Set(typ, consts)
	}

	return m
}
