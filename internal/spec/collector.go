package spec

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"
)

// DirectivePrefix introduces a resolver specification in source comments.
const DirectivePrefix = "//resolver:generate"

// Collect gathers resolver specifications declared as source directives in
// the given packages, preserving encounter order: packages in load order,
// files in compile order, directives in position order within a file.
func Collect(pkgs []*packages.Package) []Resolver {
	var specs []Resolver

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, group := range file.Comments {
				for _, comment := range group.List {
					r, ok := parseDirective(comment.Text, pkg.Fset.Position(comment.Pos()))
					if !ok {
						continue
					}

					specs = append(specs, r)
				}
			}
		}
	}

	return specs
}

// parseDirective parses one comment into a Resolver. It reports false for
// comments that are not resolver directives and for directives with an
// empty property name (those cannot key anything and are dropped silently).
func parseDirective(text string, pos token.Position) (Resolver, bool) {
	rest, ok := strings.CutPrefix(text, DirectivePrefix)
	if !ok {
		return Resolver{}, false
	}

	// Reject prefix collisions like "//resolver:generated".
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return Resolver{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Resolver{}, false
	}

	r := Resolver{
		Property: fields[0],
		Unit:     pos.Filename,
		Location: formatLocation(pos.Filename, pos.Line, pos.Column),
	}

	for _, field := range fields[1:] {
		switch {
		case strings.HasPrefix(field, "include="):
			r.Include = trimBlank(strings.Split(strings.TrimPrefix(field, "include="), ","))
		case strings.HasPrefix(field, "exclude="):
			r.Exclude = trimBlank(strings.Split(strings.TrimPrefix(field, "exclude="), ","))
		default:
			// Unknown arguments are ignored, matching the silent handling
			// of malformed specifications.
		}
	}

	return r, true
}

func formatLocation(file string, line, column int) string {
	return fmt.Sprintf("%s:%d:%d", file, line, column)
}
