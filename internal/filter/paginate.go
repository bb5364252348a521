package filter

import "github.com/ShyneADL/recipe-app/internal/model"

// DefaultPageSize matches the 12-card grid of the discover page.
const DefaultPageSize = 12

// Paginate returns the 1-based page of the given size, clipped to the
// slice bounds. Pages past the end are empty, not an error.
func Paginate(items []model.Recipe, page, size int) []model.Recipe {
	if page < 1 || size < 1 {
		return []model.Recipe{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []model.Recipe{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(total/size), with an empty set still counting as
// one page so the UI always has a page to stand on.
func TotalPages(total, size int) int {
	if size < 1 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
