// Package parse finds enum types selected for generation and collects their
// variants in declaration order.
package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/msakuta/rotate-enum/internal/codefmt"
	"github.com/msakuta/rotate-enum/internal/rotategen/table"
)

// directivePrefix marks a doc comment line selecting a type for generation,
// e.g. "//rotategen:rotate".
const directivePrefix = "//rotategen:"

// Parser parses an AST of the underlying package to collect enum types
// selected for generation.
type Parser struct {
	pkg *packages.Package

	// consts groups package-level constants by their type, lazily.
	consts *typeutil.Map
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// Target is one enum type selected for generation together with the policy to
// generate for it.
type Target struct {
	Obj      *types.TypeName
	Policy   table.Policy
	Variants []*types.Const
}

func (t Target) Pos() token.Pos       { return t.Obj.Pos() }
func (t Target) Object() types.Object { return t.Obj }

// ParseDirectives scans type declarations for rotategen directives and
// returns a target for each annotated type, in source order. Targets that
// fail validation are dropped and reported in the joined error.
func (p *Parser) ParseDirectives() ([]Target, error) {
	var targets []Target
	var errs error

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, s := range gen.Specs {
				spec := s.(*ast.TypeSpec)

				doc := spec.Doc
				if doc == nil && len(gen.Specs) == 1 {
					// For an unparenthesized declaration the doc comment
					// belongs to the GenDecl, not the TypeSpec.
					doc = gen.Doc
				}

				policy, found, err := p.directivePolicy(spec, doc)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if !found {
					continue
				}

				obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
				if !ok {
					continue
				}

				target, err := p.newTarget(obj, policy)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				targets = append(targets, target)
			}
		}
	}

	return targets, errs
}

// directivePolicy extracts the policy from a rotategen directive in the doc
// comment. found is false if the comment carries no directive. Errors are
// reported at the type name so they point at the annotated declaration.
func (p *Parser) directivePolicy(spec *ast.TypeSpec, doc *ast.CommentGroup) (table.Policy, bool, error) {
	if doc == nil {
		return 0, false, nil
	}

	var policy table.Policy
	found := false

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(rest, " ")

		if found {
			return 0, false, codefmt.Errorf(p, spec.Name, "type %s has multiple rotategen directives", spec.Name.Name)
		}

		var err error
		policy, err = table.ParsePolicy(name)
		if err != nil {
			return 0, false, codefmt.Errorf(p, spec.Name, "%s", err.Error())
		}
		found = true
	}

	return policy, found, nil
}

// FindTargets resolves explicitly named types, as given to the -type flag,
// and applies the same policy to all of them.
func (p *Parser) FindTargets(names []string, policy table.Policy) ([]Target, error) {
	var targets []Target
	var errs error

	for _, name := range names {
		obj, ok := p.pkg.Types.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, nil, "type %s not found in package %s", name, p.pkg.PkgPath))
			continue
		}

		target, err := p.newTarget(obj, policy)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		targets = append(targets, target)
	}

	return targets, errs
}

func (p *Parser) newTarget(obj *types.TypeName, policy table.Policy) (Target, error) {
	variants, err := p.collectVariants(obj)
	if err != nil {
		return Target{}, err
	}
	return Target{Obj: obj, Policy: policy, Variants: variants}, nil
}
