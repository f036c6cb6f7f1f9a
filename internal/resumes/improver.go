package resumes

import "context"

// Improver transforms resume content. It sits behind a single-method
// interface so a real rewriting backend can replace the marker without
// touching the CRUD service contract.
type Improver interface {
	Improve(ctx context.Context, content string) (string, error)
}

// MarkerImprover is the placeholder transformation: it appends a fixed
// marker to the content.
type MarkerImprover struct{}

const improvedMarker = " [Improved]"

func (MarkerImprover) Improve(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return content + improvedMarker, nil
}
