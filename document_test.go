package blockcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/blockcss/internal/document"
)

const rowDocument = `breakpoints:
  mobile: "(max-width: 600px)"
rules:
  - selector: .kb-row
    declarations:
      - property: color
        kind: color
        value: "#ff0000"
        mobile: palette1
      - property: max-width
        kind: size
        value: 100
        unit: px
      - property: z-index
        value: 0
      - property: gap
        kind: gap
        value: md
        tablet: 10
    measures:
      - property: padding
        unit: px
        value: [10, "", "", 5]
        mobile: ["", 2]
`

func parseDoc(t *testing.T, content string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(content), "test.yaml")
	require.NoError(t, err)
	return doc
}

func TestDocumentRenderer_Render(t *testing.T) {
	r := DocumentRenderer{Tokens: DefaultTokens(), Breakpoints: DefaultBreakpoints()}
	out, stats := r.Render(parseDoc(t, rowDocument))

	assert.Equal(t,
		".kb-row{color:#ff0000;max-width:100px;z-index:0;gap:var(--global-kb-gap-md, 2rem);padding-top:10px;padding-left:5px;}",
		out.Base)
	assert.Equal(t, []MediaBlock{
		{Query: "(max-width: 1024px)", CSS: ".kb-row{gap:10px;}"},
		{Query: "(max-width: 600px)", CSS: ".kb-row{color:var(--global-palette1);padding-right:2px;}"},
	}, out.Media)

	assert.Equal(t, 1, stats.Rules)
	assert.Equal(t, 9, stats.Emitted)
}

func TestDocumentRenderer_TypographyAndBorders(t *testing.T) {
	doc := parseDoc(t, `rules:
  - selector: .kb-title
    states: [":hover"]
    typography:
      size:
        value: lg
        mobile: 14
      weight: "700"
    borders:
      sides: [top, bottom]
      inherit: true
      value:
        top:
          width: 1
          color: "#000"
`)
	r := DocumentRenderer{Tokens: DefaultTokens(), Breakpoints: DefaultBreakpoints()}
	out, _ := r.Render(doc)

	assert.Equal(t, ".kb-title:hover{font-size:var(--global-kb-font-size-lg, 2rem);font-weight:700;border-top:1px solid #000;}", out.Base)
	require.Len(t, out.Media, 1)
	assert.Equal(t, "(max-width: 767px)", out.Media[0].Query)
	assert.Equal(t, ".kb-title:hover{font-size:14px;}", out.Media[0].CSS)
}

func TestDocumentRenderer_SkipsRulesWithoutSelector(t *testing.T) {
	doc := parseDoc(t, `rules:
  - declarations:
      - property: color
        value: red
  - selector: .b
    declarations:
      - property: color
        value: blue
      - property: margin
        value: ""
`)
	r := DocumentRenderer{Tokens: DefaultTokens(), Breakpoints: DefaultBreakpoints()}
	out, stats := r.Render(doc)

	assert.Equal(t, ".b{color:blue;}", out.String())
	assert.Equal(t, 2, stats.Rules)
	assert.Equal(t, 1, stats.Emitted)
	assert.Equal(t, 1, stats.Suppressed)
}

func TestDocumentRenderer_PlainUnitAndHalfSize(t *testing.T) {
	doc := parseDoc(t, `rules:
  - selector: .c
    declarations:
      - property: width
        value: 50
        unit: "%"
      - property: height
        value: auto
        unit: px
      - property: margin-top
        kind: half-size
        value: 3
      - property: font-size
        kind: font-size
        value: xl
`)
	r := DocumentRenderer{Tokens: DefaultTokens(), Breakpoints: DefaultBreakpoints()}
	out, _ := r.Render(doc)

	assert.Equal(t, ".c{width:50%;height:auto;margin-top:calc(3em / 2);font-size:var(--global-kb-font-size-xl, 3rem);}", out.String())
}

func TestTierSet(t *testing.T) {
	assert.True(t, tierSet(DeviceDesktop, nil, nil))
	assert.False(t, tierSet(DeviceTablet, nil, 5))
	assert.True(t, tierSet(DeviceTablet, 0, nil))
	assert.True(t, tierSet(DeviceMobile, nil, "x"))
	assert.False(t, tierSet(DeviceMobile, "x", ""))
}

func TestRenderStatsAdd(t *testing.T) {
	s := RenderStats{Rules: 1, Emitted: 2, Suppressed: 3}
	s.Add(RenderStats{Rules: 1, Emitted: 1, Suppressed: 1})
	assert.Equal(t, RenderStats{Rules: 2, Emitted: 3, Suppressed: 4}, s)
}
