package request

// SearchRequest is matched verbatim; surrounding spaces are part of the term.
type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}
