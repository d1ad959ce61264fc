package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesFixedOrder(t *testing.T) {
	got := Categories()
	require.Len(t, got, CategoryCount)
	assert.Equal(t, []Category{
		CategoryGrammar,
		CategoryFactuality,
		CategoryHallucination,
		CategoryRedundancy,
		CategoryRepetition,
		CategoryMissingStep,
		CategoryCoherency,
		CategoryCommonsense,
		CategoryArithmetic,
	}, got)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	got := Categories()
	got[0] = Category("Tampered")
	assert.Equal(t, CategoryGrammar, Categories()[0])
}

func TestEveryCategoryHasAPrompt(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, Prompt(c), "category %s", c)
	}
}

func TestPromptUnknownCategoryPanics(t *testing.T) {
	assert.Panics(t, func() { Prompt(Category("Spelling")) })
}
