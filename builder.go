package blockcss

import (
	"strings"

	"go.uber.org/zap"
)

// specialProperties need prefixing or value rewriting before they are emitted.
var specialProperties = map[string]bool{
	"border-top-left-radius":     true,
	"border-top-right-radius":    true,
	"border-bottom-left-radius":  true,
	"border-bottom-right-radius": true,
	"transition":                 true,
	"transition-delay":           true,
	"transition-duration":        true,
	"transition-property":        true,
	"transition-timing-function": true,
	"background-image":           true,
	"content":                    true,
	"line-height":                true,
}

// mozCornerNames are the legacy Gecko names of the border-radius corners.
var mozCornerNames = map[string]string{
	"border-top-left-radius":     "border-radius-topleft",
	"border-top-right-radius":    "border-radius-topright",
	"border-bottom-left-radius":  "border-radius-bottomleft",
	"border-bottom-right-radius": "border-radius-bottomright",
}

// contentEscaper escapes text placed inside a double-quoted CSS string.
var contentEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `)

// Builder accumulates declarations per selector and serializes them into a
// minified stylesheet. A Builder is owned by one render pass and is not safe
// for concurrent use.
type Builder struct {
	state State

	tokens  *Tokens
	colors  ColorFormatter
	fonts   TypographyFormatter
	borders BorderFormatter
	log     *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithTokens sets the design-token tables used for token lookups.
func WithTokens(t *Tokens) Option {
	return func(b *Builder) {
		if t != nil {
			b.tokens = t
		}
	}
}

// WithColorFormatter replaces the color collaborator.
func WithColorFormatter(f ColorFormatter) Option {
	return func(b *Builder) { b.colors = f }
}

// WithTypographyFormatter replaces the typography collaborator.
func WithTypographyFormatter(f TypographyFormatter) Option {
	return func(b *Builder) { b.fonts = f }
}

// WithBorderFormatter replaces the border collaborator.
func WithBorderFormatter(f BorderFormatter) Option {
	return func(b *Builder) { b.borders = f }
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// New creates an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		tokens: DefaultTokens(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.colors == nil {
		b.colors = PaletteColorFormatter{}
	}
	if b.fonts == nil {
		b.fonts = NewTypographyFormatter(b.tokens)
	}
	if b.borders == nil {
		b.borders = NewBorderFormatter(b.colors)
	}
	b.log = b.log.Named("builder")
	return b
}

// State returns a snapshot of the builder state.
func (b *Builder) State() State {
	return b.state
}

// Tokens returns the token set the builder resolves against.
func (b *Builder) Tokens() *Tokens {
	return b.tokens
}

// SetSelector flushes the pending declarations under the previous selector
// and makes selector the active one. Setting the same selector again still
// flushes.
func (b *Builder) SetSelector(selector string) *Builder {
	b.state = b.state.SwitchSelector(selector)
	return b
}

// SetSelectorStates sets the state suffixes (":hover", ":focus", ...) the
// active selector is expanded into when it is flushed. No states clears them.
func (b *Builder) SetSelectorStates(states ...string) *Builder {
	b.state.States = append([]string(nil), states...)
	return b
}

// SetMediaQuery routes subsequent flushes to the media-query output. An empty
// query routes them back to the base output. The caller wraps the media
// output in its @media block.
func (b *Builder) SetMediaQuery(query string) *Builder {
	b.state.MediaQuery = query
	return b
}

// MediaQuery returns the active media query marker.
func (b *Builder) MediaQuery() string {
	return b.state.MediaQuery
}

// HasMediaQuery reports whether flushes currently go to the media-query output.
func (b *Builder) HasMediaQuery() bool {
	return b.state.MediaQuery != ""
}

// AddProperty adds a declaration, applying prefixing and value rewriting for
// the special properties. Empty values add nothing.
func (b *Builder) AddProperty(property string, value any) *Builder {
	if IsEmpty(value) {
		b.state = b.state.Suppress()
		return b
	}
	if specialProperties[property] {
		return b.addSpecialRules(property, value)
	}
	return b.AddRule(property, value)
}

// AddRule appends property:value to the pending declarations unless value is empty.
func (b *Builder) AddRule(property string, value any) *Builder {
	return b.AddPrefixedRule("", property, value)
}

// AddPrefixedRule appends prefix+property:value unless value is empty.
func (b *Builder) AddPrefixedRule(prefix, property string, value any) *Builder {
	if IsEmpty(value) {
		b.state = b.state.Suppress()
		return b
	}
	b.state = b.state.Append(Declaration{Property: prefix + property, Value: formatValue(value)})
	return b
}

func (b *Builder) addSpecialRules(property string, value any) *Builder {
	switch property {
	case "border-top-left-radius", "border-top-right-radius",
		"border-bottom-left-radius", "border-bottom-right-radius":
		b.AddRule(property, value)
		b.AddPrefixedRule("-webkit-", property, value)
		b.AddPrefixedRule("-moz-", mozCornerNames[property], value)
	case "background-image":
		text := formatValue(value)
		if strings.HasPrefix(text, "var(") {
			b.AddRule(property, text)
		} else {
			b.AddRule(property, "url('"+text+"')")
		}
	case "content":
		b.AddRule(property, `"`+contentEscaper.Replace(formatValue(value))+`"`)
	case "line-height":
		if n, ok := numericValue(value); ok && n == 0 {
			value = "0px"
		}
		b.AddRule(property, value)
	default:
		b.AddRule(property, value)
		b.AddPrefixedRule("-webkit-", property, value)
		b.AddPrefixedRule("-moz-", property, value)
	}
	return b
}

// addRaw appends declaration text produced by a collaborator, bypassing the
// empty gate.
func (b *Builder) addRaw(text string) *Builder {
	if text != "" {
		b.state = b.state.Append(Declaration{Value: text})
	}
	return b
}

// CSSOutput flushes the active selector and returns the base stylesheet.
// Calling it again without new declarations returns the same text.
func (b *Builder) CSSOutput() string {
	b.state = b.state.Flush()
	return b.state.Output
}

// MediaQueryOutput flushes the active selector and returns the text routed
// to the media-query output, without its @media wrapper.
func (b *Builder) MediaQueryOutput() string {
	b.state = b.state.Flush()
	return b.state.MediaOutput
}
