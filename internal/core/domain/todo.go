package domain

// Todo is a single list item owned by exactly one user. CompletedAt is
// milliseconds since epoch, set server-side when Completed flips to true and
// cleared when it flips back; it is non-nil iff Completed is true.
type Todo struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
	Creator     string `json:"creator"`
}
