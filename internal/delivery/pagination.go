package delivery

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 24
	maxLimit     = 100
)

// parsePage coerces the query-string value, clamping anything unusable
// to the first page rather than passing a hostile offset through.
func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultPage
	}
	return n
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// totalPages is ceil(total/limit), floored at 1 so an empty result still
// reports one page.
func totalPages(total, limit int) int {
	if total <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
