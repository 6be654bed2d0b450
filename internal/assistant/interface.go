package assistant

import "context"

// Assistant proposes annotation markup for a plain transcript, so an operator
// can start from a draft instead of an empty page.
type Assistant interface {
	SuggestMarkup(ctx context.Context, transcript string) (string, error)
}
