package service

// PageLimit is the fixed page size for every listing endpoint.
const PageLimit = 50

type PageMeta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

func NewPageMeta(total int64, page int) PageMeta {
	pages := int(total / PageLimit)
	if total%PageLimit != 0 {
		pages++
	}
	return PageMeta{Total: total, Pages: pages, Page: page}
}

// NormalizePage clamps the page query parameter to 1 when absent or bad.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func PageOffset(page int) int {
	return (page - 1) * PageLimit
}
