package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// LibraryStrategy writes through github.com/atotto/clipboard, the
// last-resort path when no helper process worked.
type LibraryStrategy struct {
	// Write overrides the library call, for tests.
	Write func(text string) error
}

func (l *LibraryStrategy) Name() string {
	return "clipboard library"
}

func (l *LibraryStrategy) Applicable(Env) bool {
	return l.Write != nil || !clipboard.Unsupported
}

func (l *LibraryStrategy) Deliver(_ context.Context, text string) error {
	if l.Write != nil {
		return l.Write(text)
	}
	return clipboard.WriteAll(text)
}
