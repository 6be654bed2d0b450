package processor

import "context"

// Processor handles one annotation job: an annotated text file with its
// audio sibling.
type Processor interface {
	Process(ctx context.Context, annotationPath string) error
}
