package response

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListResponse is the standard wrapper for list endpoints. The admin frontend
// paginates by following the next/previous links.
type ListResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewListResponse builds the list envelope, deriving next/previous page links
// from the current request URL with only the page parameter replaced.
func NewListResponse[T any](c *gin.Context, results []T, page, pageSize, count int) ListResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if results == nil {
		results = make([]T, 0)
	}

	resp := ListResponse[T]{
		Count:   count,
		Results: results,
	}

	lastPage := (count + pageSize - 1) / pageSize
	if page < lastPage {
		resp.Next = pageLink(c.Request.URL, page+1)
	}
	if page > 1 {
		resp.Previous = pageLink(c.Request.URL, page-1)
	}

	return resp
}

func pageLink(u *url.URL, page int) *string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	link := u.Path + "?" + q.Encode()
	return &link
}
