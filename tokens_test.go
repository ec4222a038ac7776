package blockcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTokens(t *testing.T) {
	tokens := DefaultTokens()

	assert.True(t, tokens.IsSpacing("md"))
	assert.Equal(t, "var(--global-kb-spacing-md, 2rem)", tokens.Spacing("md"))
	assert.Equal(t, "var(--global-kb-spacing-auto, auto)", tokens.Spacing("ss-auto"))
	assert.False(t, tokens.IsSpacing("huge"))
	assert.Equal(t, "0", tokens.Spacing("huge"))

	gap, ok := tokens.Gap("md")
	assert.True(t, ok)
	assert.Equal(t, "var(--global-kb-gap-md, 2rem)", gap)
	_, ok = tokens.Gap("10")
	assert.False(t, ok)

	size, ok := tokens.FontSize("lg")
	assert.True(t, ok)
	assert.Equal(t, "var(--global-kb-font-size-lg, 2rem)", size)
	assert.False(t, tokens.IsFontSize("huge"))
}

func TestNewTokens(t *testing.T) {
	t.Run("valid tables", func(t *testing.T) {
		tokens, err := NewTokens(TokenTables{
			Spacing: map[string]string{"tiny": "2px"},
		})
		require.NoError(t, err)
		assert.Equal(t, "2px", tokens.Spacing("tiny"))
		assert.False(t, tokens.IsSpacing("md"))
	})

	t.Run("empty value rejected", func(t *testing.T) {
		_, err := NewTokens(TokenTables{
			Gaps: map[string]string{"wide": ""},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token tables")
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewTokens(TokenTables{
			FontSizes: map[string]string{"": "1rem"},
		})
		require.Error(t, err)
	})

	t.Run("caller map is copied", func(t *testing.T) {
		spacing := map[string]string{"tiny": "2px"}
		tokens, err := NewTokens(TokenTables{Spacing: spacing})
		require.NoError(t, err)

		spacing["tiny"] = "3px"
		assert.Equal(t, "2px", tokens.Spacing("tiny"))
	})
}

func TestTokenTablesMerge(t *testing.T) {
	merged := DefaultTokenTables().Merge(TokenTables{
		Spacing: map[string]string{"md": "24px", "6xl": "12rem"},
	})

	assert.Equal(t, "24px", merged.Spacing["md"])
	assert.Equal(t, "12rem", merged.Spacing["6xl"])
	assert.Equal(t, "var(--global-kb-spacing-lg, 3rem)", merged.Spacing["lg"])
	assert.Equal(t, DefaultTokenTables().Gaps, merged.Gaps)

	// the receiver is left alone
	assert.Equal(t, "var(--global-kb-spacing-md, 2rem)", DefaultTokenTables().Spacing["md"])
}

func TestTokensTables_ReturnsCopy(t *testing.T) {
	tables := DefaultTokens().Tables()
	tables.Spacing["md"] = "1px"

	assert.Equal(t, "var(--global-kb-spacing-md, 2rem)", DefaultTokens().Spacing("md"))
}

func TestSortedNames(t *testing.T) {
	names := SortedNames(map[string]string{"md": "", "lg": "", "3xl": ""})
	assert.Equal(t, []string{"3xl", "lg", "md"}, names)
}

func TestBreakpoints(t *testing.T) {
	bp := DefaultBreakpoints()
	require.NoError(t, bp.Validate())

	assert.Equal(t, "", bp.For(DeviceDesktop))
	assert.Equal(t, "(max-width: 1024px)", bp.For(DeviceTablet))
	assert.Equal(t, "(max-width: 767px)", bp.For(DeviceMobile))

	err := Breakpoints{Tablet: "(max-width: 900px)"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid breakpoints")
}
