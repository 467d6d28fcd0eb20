package scraper

import (
	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
)

// NotePage is one page of the marketplace's browse notes response.
type NotePage struct {
	Result       string       `json:"result"`
	TotalRecords int          `json:"totalRecords"`
	SearchResult SearchResult `json:"searchresult"`
}

// SearchResult wraps the listing snapshots of one page.
type SearchResult struct {
	Loans []v1.ListingSnapshot `json:"loans"`
}

// resultSuccess is the value of the result key on a good page.
const resultSuccess = "success"
