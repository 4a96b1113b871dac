package postService

// SaveRequest - fields of a new post provided by the caller
type SaveRequest struct {
	Title   string
	Article string
}
