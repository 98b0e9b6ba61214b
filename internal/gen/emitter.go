package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"resolver-generator/internal/catalog"
	"resolver-generator/internal/common"
	"resolver-generator/internal/match"
	"resolver-generator/internal/spec"
)

// FallbackPackageName names the generated package when no module path is
// determinable and no override is configured.
const FallbackPackageName = "resolvers"

// Config holds configuration for artifact emission.
type Config struct {
	// PackageName overrides the generated package name. When empty, the
	// name derives from the catalog's module path.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultConfig returns the default emission configuration.
func DefaultConfig() Config {
	return Config{
		OutputDir: "./generated",
	}
}

// Emitter turns matched (type, property) pairs into generated dispatch
// artifacts.
type Emitter struct {
	config Config
}

// NewEmitter creates a new Emitter with the given configuration.
func NewEmitter(config Config) *Emitter {
	return &Emitter{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "accountid_resolver.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Emit generates one artifact per specification, in specification order.
// Specifications must already be deduplicated; an empty match list still
// produces an artifact so downstream code links against a stable symbol.
func (e *Emitter) Emit(cat *catalog.Catalog, specs []spec.Resolver) ([]GeneratedFile, error) {
	pkgName := e.packageName(cat)

	var files []GeneratedFile

	for _, r := range specs {
		file, err := e.emitArtifact(pkgName, r, match.Filter(r, cat))
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", r.ArtifactName(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// packageName resolves the output package name: explicit override, then the
// sanitized base of the module path, then the fixed fallback.
func (e *Emitter) packageName(cat *catalog.Catalog) string {
	if e.config.PackageName != "" {
		return e.config.PackageName
	}

	if name := common.Identifier(common.PkgAlias(cat.ModulePath)); name != "" {
		return name
	}

	return FallbackPackageName
}

// templateData holds all data needed for the resolver template.
type templateData struct {
	PackageName  string
	Imports      []importSpec
	ResolverName string
	MethodName   string
	Property     string
	Entries      []entryData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// entryData is one dispatch entry of the generated type switch.
type entryData struct {
	// TypeRef is the qualified case expression (e.g., "store.Order").
	TypeRef string
	// Field is the matched property's declared name on this type.
	Field string
	// Nullable entries are extracted behind a nil check.
	Nullable bool
	// Deref marks pointer fields, which are dereferenced after the check.
	Deref bool
}

// emitArtifact generates the file for a single specification.
func (e *Emitter) emitArtifact(
	pkgName string,
	r spec.Resolver,
	entries []match.Entry,
) (*GeneratedFile, error) {
	data := e.buildTemplateData(pkgName, r, entries)

	var buf bytes.Buffer
	if err := resolverTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := e.filename(r)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if e.config.OutputDir != "" {
			_ = writeDebugUnformatted(e.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data for one artifact.
// Entries keep catalog traversal order; imports are sorted by path so
// repeated runs on unchanged inputs yield byte-identical output.
func (e *Emitter) buildTemplateData(
	pkgName string,
	r spec.Resolver,
	entries []match.Entry,
) *templateData {
	data := &templateData{
		PackageName:  pkgName,
		ResolverName: r.ArtifactName(),
		MethodName:   r.MethodName(),
		Property:     r.Property,
	}

	imports := make(map[string]importSpec)

	for _, entry := range entries {
		addImport(imports, entry.Type.PkgPath())

		data.Entries = append(data.Entries, entryData{
			TypeRef:  common.PkgAlias(entry.Type.PkgPath()) + "." + entry.Type.ID.Name,
			Field:    entry.Property.Name,
			Nullable: entry.Property.Nullable,
			Deref:    entry.Property.Pointer,
		})
	}

	// Stringification only happens when there is something to dispatch on.
	if len(data.Entries) > 0 {
		imports["fmt"] = importSpec{Path: "fmt"}
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

func addImport(imports map[string]importSpec, pkgPath string) {
	if pkgPath == "" {
		return
	}

	imports[pkgPath] = importSpec{
		Alias: common.PkgAlias(pkgPath),
		Path:  pkgPath,
	}
}

func (e *Emitter) filename(r spec.Resolver) string {
	return strings.ToLower(r.Property) + "_resolver.go"
}

// Template for the resolver file.

var resolverTemplate = template.Must(template.New("resolver").Parse(`// Code generated by resolver-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.ResolverName}} resolves the {{.Property}} property across all catalog
// types that declare it, without reflection.
type {{.ResolverName}} struct{}

// {{.MethodName}} returns the {{.Property}} of v rendered as text.
// The second result is false when v is not a dispatchable type or the value
// is absent.
func ({{.ResolverName}}) {{.MethodName}}(v any) (string, bool) {
{{if .Entries}}	switch x := v.(type) {
{{range .Entries}}	case {{.TypeRef}}:
{{if .Nullable}}		if x.{{.Field}} == nil {
			return "", false
		}

		return fmt.Sprint({{if .Deref}}*{{end}}x.{{.Field}}), true
{{else}}		return fmt.Sprint(x.{{.Field}}), true
{{end}}{{end}}	}

{{end}}	return "", false
}
`))
