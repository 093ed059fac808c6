package question

// DefaultPageSize is the number of questions per listing page.
const DefaultPageSize = 10

// Paginate returns the page-th fixed-size window of items, pages counted
// from 1. Out-of-range pages yield an empty slice, never an error; the
// caller decides whether an empty window is a not-found condition.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
