package rotategen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"maps"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/msakuta/rotate-enum/internal/codefmt"
	"github.com/msakuta/rotate-enum/internal/rotategen/emit"
	"github.com/msakuta/rotate-enum/internal/rotategen/parse"
	"github.com/msakuta/rotate-enum/internal/rotategen/table"
)

// Options selects the enums to generate for. If Types is empty, types are
// discovered from rotategen directives and Policy is ignored; otherwise the
// named types are generated for under Policy.
type Options struct {
	Types  []string
	Policy table.Policy
}

// Generator generates navigation methods for the enums of one package. Call
// [Generator.Build] and then [Generator.Generate] to get the generated code.
// All potential errors are returned by Build. Once Build succeeds, Generate
// never fails.
type Generator struct {
	p    *parse.Parser
	opts Options
	ns   codefmt.NS
	buf  *bytes.Buffer
	w    *codefmt.Writer

	units []unit
}

// unit pairs a target with its transition table, ready for emission.
type unit struct {
	parse.Target
	tbl table.Table
}

// New creates a new [Generator] for the given package. The package must have
// its Syntax, Types and TypesInfo, and must not have any errors.
func New(pkg *packages.Package, opts Options) (*Generator, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Generator{
		p:    parser,
		opts: opts,
		ns:   codefmt.NewNS(pkg.Types.Scope()),
		buf:  &buf,
		w:    codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build collects the targeted enums and computes their transition tables. It
// must be called before [Generator.Generate].
func (g *Generator) Build() error {
	var targets []parse.Target
	var errs error

	if len(g.opts.Types) != 0 {
		targets, errs = g.p.FindTargets(g.opts.Types, g.opts.Policy)
	} else {
		targets, errs = g.p.ParseDirectives()
	}

	slices.SortFunc(targets, func(a, b parse.Target) int {
		return int(a.Pos() - b.Pos())
	})

	for _, t := range targets {
		tbl := table.Build(table.NewSequence(t.Variants), t.Policy)

		if t.Policy == table.PolicyIterate {
			// The cursor type and its constructor become package-level names.
			// Refuse to clash with existing declarations instead of leaving
			// the conflict to the later compilation of the output.
			iterName := emit.IteratorName(t.Obj)
			ctorName := emit.ConstructorName(t.Obj)
			if !g.ns.Reserve(iterName) || !g.ns.Reserve(ctorName) {
				errs = errors.Join(errs, codefmt.Errorf(g.p, t,
					"cannot declare iterator %s for enum %o: the name is already used in package %s",
					iterName, t.Obj, g.p.Pkg().Name))
				continue
			}
		}

		g.units = append(g.units, unit{Target: t, tbl: tbl})
	}

	return errs
}

// Generate generates the navigation code for the package. It must be called
// after [Generator.Build] succeeds. The result is nil if no enum in the
// package is targeted.
func (g *Generator) Generate() []byte {
	if len(g.units) == 0 {
		return nil
	}

	for i, u := range g.units {
		if i > 0 {
			g.w.Printf("\n")
		}

		local := maps.Clone(g.ns)
		emit.Write(g.w.WithNS(local), u.Obj, u.tbl)
	}

	return g.frameCode()
}

// frameCode frames the emitted declarations with a header, the package
// clause, and the collected imports, then formats the whole file.
func (g *Generator) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/msakuta/rotate-enum%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", g.p.Pkg().Name)

	imports := g.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	buf.Write(g.buf.Bytes())
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
