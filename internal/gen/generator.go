package gen

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"parcelable-generator/internal/adapter"
	"parcelable-generator/internal/config"
	"parcelable-generator/internal/decl"
	"parcelable-generator/internal/diagnostic"
	"parcelable-generator/internal/match"
)

// PlaceholderClassName is used when the input declares no class.
const PlaceholderClassName = "MyClass"

// maxSuggestions bounds the "did you mean" list of an unresolved field.
const maxSuggestions = 3

// Generator turns field declarations into Parcelable boilerplate.
// A Generator holds configuration only and may be reused.
type Generator struct {
	registry *Registry
	indent   string
	tab      string
	logger   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for dispatch decisions.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithIndentation overrides the base indentation and the per-level tab.
func WithIndentation(indent, tab string) Option {
	return func(g *Generator) {
		g.indent = indent
		g.tab = tab
	}
}

// NewGenerator creates a Generator over registry using the default
// indentation of config.Default.
func NewGenerator(registry *Registry, opts ...Option) *Generator {
	def := config.Default()

	g := &Generator{
		registry: registry,
		indent:   def.Indent,
		tab:      def.Tab,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewConfigured creates a Generator with the standard registry and the
// indentation described by cfg.
func NewConfigured(cfg *config.Config, opts ...Option) (*Generator, error) {
	registry, err := StandardRegistry(cfg)
	if err != nil {
		return nil, err
	}

	opts = append([]Option{WithIndentation(cfg.Indent, cfg.Tab)}, opts...)

	return NewGenerator(registry, opts...), nil
}

// Registry returns the registry the generator dispatches to.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// Output is the result of one generation run.
type Output struct {
	// Text is the assembled Java code.
	Text string
	// Read holds the normalized statements of the Parcel constructor.
	Read []string
	// Write holds the normalized statements of writeToParcel.
	Write []string
	// Diagnostics collects unresolved fields and other findings.
	Diagnostics diagnostic.Diagnostics
}

// Generate produces the Parcelable code for className and fields. Fields
// without an adapter are reported in Output.Diagnostics and skipped.
func (g *Generator) Generate(className string, fields []decl.Field) (*Output, error) {
	out := &Output{}

	var read, write []string

	for _, f := range fields {
		r, w, ok := g.generateField(className, f, &out.Diagnostics)
		if !ok {
			continue
		}

		read = append(read, r...)
		write = append(write, w...)
	}

	out.Read = Normalize(read, g.indent, g.tab)
	out.Write = Normalize(write, g.indent, g.tab)

	text, err := Assemble(className, out.Read, out.Write)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", className, err)
	}

	out.Text = text

	return out, nil
}

// GenerateDeclaration generates code for a scanned declaration. A missing
// class name is reported and replaced by PlaceholderClassName.
func (g *Generator) GenerateDeclaration(d *decl.Declaration) (*Output, error) {
	className := d.ClassName
	if !d.HasClass() {
		className = PlaceholderClassName
	}

	out, err := g.Generate(className, d.Fields)
	if err != nil {
		return nil, err
	}

	if !d.HasClass() {
		out.Diagnostics.AddWarning(diagnostic.CodeClassNotFound,
			"no public class declaration found, using "+PlaceholderClassName, "", "")
	}

	return out, nil
}

// generateField returns the raw read and write lines of every adapter
// handling f, in registration order.
func (g *Generator) generateField(
	className string,
	f decl.Field,
	diags *diagnostic.Diagnostics,
) (read, write []string, ok bool) {
	adapters, fallback := g.registry.Resolve(f.Type)
	if len(adapters) == 0 {
		suggestions := match.Suggest(f.Type, g.registry.KnownTypeNames(), maxSuggestions)
		diags.AddWarning(diagnostic.CodeUnresolvedField,
			"ignored, because no suitable adapter is found",
			className, f.String(), suggestions...)
		g.logger.Debug("field ignored",
			zap.String("type", f.Type),
			zap.String("field", f.Name),
			zap.Strings("suggestions", suggestions))

		return nil, nil, false
	}

	g.logger.Debug("field resolved",
		zap.String("type", f.Type),
		zap.String("field", f.Name),
		zap.Bool("default", fallback),
		zap.Strings("adapters", lo.Map(adapters, func(a adapter.Adapter, _ int) string {
			return a.Kind().String()
		})))

	for _, a := range adapters {
		read = append(read, splitLines(a.GenerateRead(f.Type, f.Name))...)
		write = append(write, splitLines(a.GenerateWrite(f.Type, f.Name))...)
	}

	return read, write, true
}

func splitLines(snippet string) []string {
	return strings.Split(snippet, "\n")
}

// Generate is a one-shot helper running a generator over adapters and
// fallback with the default indentation.
func Generate(
	className string,
	fields []decl.Field,
	adapters []adapter.Adapter,
	fallback adapter.Adapter,
) (*Output, error) {
	return NewGenerator(NewRegistry(fallback, adapters...)).Generate(className, fields)
}
