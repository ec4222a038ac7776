package blockcss

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// MediaBlock is media-query output together with its condition.
type MediaBlock struct {
	Query string
	CSS   string
}

// Output is a rendered stylesheet: base rules followed by media blocks.
type Output struct {
	Base  string
	Media []MediaBlock
}

// String concatenates the base rules and every wrapped media block.
func (o Output) String() string {
	var b strings.Builder
	b.WriteString(o.Base)
	for _, m := range o.Media {
		b.WriteString(WrapMedia(m.Query, m.CSS))
	}
	return b.String()
}

// WrapMedia wraps css in an @media block for condition. Empty css yields "".
func WrapMedia(condition, css string) string {
	if css == "" {
		return ""
	}
	if condition == "" {
		return css
	}
	return "@media " + condition + "{" + css + "}"
}

// Rule is one ruleset read back from CSS text.
type Rule struct {
	Selector     string
	Media        string
	Declarations []Declaration
}

// ParseRules reads CSS text back into rulesets in source order. Rules inside
// an @media block carry its condition.
func ParseRules(text string) ([]Rule, error) {
	p := css.NewParser(parse.NewInputString(text), false)

	var rules []Rule
	var media string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return rules, fmt.Errorf("parse css: %w", err)
			}
			return rules, nil
		case css.BeginAtRuleGrammar:
			if string(data) == "@media" {
				media = tokensText(p.Values())
			}
		case css.EndAtRuleGrammar:
			media = ""
		case css.BeginRulesetGrammar:
			rules = append(rules, Rule{
				Selector: strings.TrimSpace(string(data) + tokensText(p.Values())),
				Media:    media,
			})
		case css.DeclarationGrammar:
			if len(rules) == 0 {
				continue
			}
			last := &rules[len(rules)-1]
			last.Declarations = append(last.Declarations, Declaration{
				Property: string(data),
				Value:    tokensText(p.Values()),
			})
		}
	}
}

func tokensText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
