package helper

import (
	"net/url"
	"strconv"

	"events.xdoubleu.com/apps/events/pkg/eventsapi"
)

// PageSize has to match the page size of the events API. Nothing
// negotiates it.
const PageSize = 9

const pageDelta = 2

type PageLink struct {
	Number  int
	URL     string
	Current bool
}

type NavLink struct {
	URL      string
	Disabled bool
}

type Pagination struct {
	Visible          bool
	CurrentPage      int
	TotalPages       int
	First            *PageLink
	LeadingEllipsis  bool
	Pages            []PageLink
	TrailingEllipsis bool
	Last             *PageLink
	Previous         NavLink
	Next             NavLink
	From             int
	To               int
	Total            int
}

// CurrentPage reads the 1-based page from the URL, defaulting to 1.
func CurrentPage(values url.Values) int {
	page, err := strconv.Atoi(values.Get(eventsapi.ParamPage))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// PageRange is the window of page numbers shown around the current page.
func PageRange(currentPage int, totalPages int) (int, int) {
	return max(1, currentPage-pageDelta), min(totalPages, currentPage+pageDelta)
}

// PageURL keeps the current query and only swaps the page. Page 1 is
// expressed by leaving the parameter out.
func PageURL(path string, query url.Values, page int) string {
	values := url.Values{}
	for key, vals := range query {
		values[key] = append([]string{}, vals...)
	}

	if page <= 1 {
		values.Del(eventsapi.ParamPage)
	} else {
		values.Set(eventsapi.ParamPage, strconv.Itoa(page))
	}

	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// NewPagination builds the pagination control. hasNext and hasPrevious come
// from the API response and are trusted as is, even when they disagree with
// the computed window.
func NewPagination(
	path string,
	query url.Values,
	currentPage int,
	total int,
	hasNext bool,
	hasPrevious bool,
) Pagination {
	totalPages := TotalPages(total)
	if totalPages <= 1 {
		//nolint:exhaustruct //nothing to render
		return Pagination{Visible: false, CurrentPage: currentPage, Total: total}
	}

	start, end := PageRange(currentPage, totalPages)

	pagination := Pagination{
		Visible:          true,
		CurrentPage:      currentPage,
		TotalPages:       totalPages,
		First:            nil,
		LeadingEllipsis:  false,
		Pages:            []PageLink{},
		TrailingEllipsis: false,
		Last:             nil,
		Previous: NavLink{
			URL:      PageURL(path, query, currentPage-1),
			Disabled: !hasPrevious,
		},
		Next: NavLink{
			URL:      PageURL(path, query, currentPage+1),
			Disabled: !hasNext,
		},
		From:  (currentPage-1)*PageSize + 1,
		To:    min(currentPage*PageSize, total),
		Total: total,
	}

	if start > 1 {
		pagination.First = &PageLink{
			Number:  1,
			URL:     PageURL(path, query, 1),
			Current: false,
		}
		pagination.LeadingEllipsis = start > 2 //nolint:mnd //gap of more than one page
	}

	for i := start; i <= end; i++ {
		pagination.Pages = append(pagination.Pages, PageLink{
			Number:  i,
			URL:     PageURL(path, query, i),
			Current: i == currentPage,
		})
	}

	if end < totalPages {
		pagination.TrailingEllipsis = end < totalPages-1
		pagination.Last = &PageLink{
			Number:  totalPages,
			URL:     PageURL(path, query, totalPages),
			Current: false,
		}
	}

	return pagination
}
