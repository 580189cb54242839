package contract

// ListQuery is bound from the query string of every listing endpoint,
// e.g. GET /api/executors?order=inn_executor&desc=true.
type ListQuery struct {
	Order string `query:"order"`
	Desc  bool   `query:"desc"`
}
