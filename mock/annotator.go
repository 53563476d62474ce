package mock

import "github.com/ykawada/webnovel"

var _ webnovel.Annotator = (*Annotator)(nil)

// Annotator is a mock implementation of webnovel.Annotator.
type Annotator struct {
	AnnotateFn func(text string) string
}

func (a *Annotator) Annotate(text string) string {
	return a.AnnotateFn(text)
}
