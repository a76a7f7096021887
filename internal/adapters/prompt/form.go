package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// FormPrompter asks questions with huh forms on an interactive terminal
type FormPrompter struct {
	accessible bool
}

var _ ports.Prompter = (*FormPrompter)(nil)

// NewFormPrompter creates a new FormPrompter. accessible switches huh to its
// screen-reader friendly mode.
func NewFormPrompter(accessible bool) *FormPrompter {
	return &FormPrompter{accessible: accessible}
}

// ChooseAction shows the recovery menu for change and returns the selection
func (p *FormPrompter) ChooseAction(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryAction, error) {
	options := make([]huh.Option[domain.RecoveryAction], 0, len(domain.RecoveryActions))
	for _, info := range domain.RecoveryActions {
		options = append(options, huh.NewOption(fmt.Sprintf("%-11s %s", info.Label, info.Description), info.Action))
	}

	action := domain.ActionDiff
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.RecoveryAction]().
				Title(fmt.Sprintf("Conflict in %s %s", change.ShortID(), change.SubjectPreview(60))).
				Description("How do you want to proceed?").
				Options(options...).
				Value(&action),
		),
	).WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		logging.Logger.Warn("Recovery menu failed", "hash", change.ID, "error", err)
		return 0, fmt.Errorf("failed to read recovery action: %w", err)
	}
	logging.Logger.Debug("Recovery action chosen", "hash", change.ID, "action", action.Key())
	return action, nil
}

// Confirm asks a yes/no question, defaulting to no
func (p *FormPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Value(&ok).
				Affirmative("Yes").
				Negative("No"),
		),
	).WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return ok, nil
}
