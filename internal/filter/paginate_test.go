package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShyneADL/recipe-app/internal/model"
)

func numberedRecipes(n int) []model.Recipe {
	recipes := make([]model.Recipe, n)
	for i := range recipes {
		recipes[i] = model.Recipe{ID: i + 1, Recipe: fmt.Sprintf("Recipe %d", i+1)}
	}
	return recipes
}

func TestPaginateSecondPageHoldsRemainder(t *testing.T) {
	recipes := numberedRecipes(14)

	page := Paginate(recipes, 2, DefaultPageSize)
	assert.Len(t, page, 2)
	assert.Equal(t, 13, page[0].ID)
	assert.Equal(t, 14, page[1].ID)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	recipes := numberedRecipes(14)

	assert.Empty(t, Paginate(recipes, 3, DefaultPageSize))
	assert.Empty(t, Paginate(recipes, 100, DefaultPageSize))
}

func TestPaginateInvalidArgs(t *testing.T) {
	recipes := numberedRecipes(5)

	assert.Empty(t, Paginate(recipes, 0, DefaultPageSize))
	assert.Empty(t, Paginate(recipes, -1, DefaultPageSize))
	assert.Empty(t, Paginate(recipes, 1, 0))
}

func TestPaginateReassembles(t *testing.T) {
	recipes := numberedRecipes(29)
	size := 12

	var joined []model.Recipe
	for page := 1; page <= TotalPages(len(recipes), size); page++ {
		joined = append(joined, Paginate(recipes, page, size)...)
	}
	assert.Equal(t, recipes, joined)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 2, TotalPages(14, 12))
	assert.Equal(t, 3, TotalPages(25, 12))
}
