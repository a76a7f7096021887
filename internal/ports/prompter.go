package ports

import (
	"context"

	"github.com/renato0307/chronopick/internal/domain"
)

// Prompter asks the operator for decisions. Every call blocks until an
// answer is read; there is no timeout.
type Prompter interface {
	// ChooseAction asks which recovery action to take for a blocked change
	ChooseAction(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryAction, error)
	// Confirm asks a yes/no question; only an explicit yes returns true
	Confirm(ctx context.Context, question string) (bool, error)
}
