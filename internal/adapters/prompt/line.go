package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// ErrInputClosed is returned when the input ends before an answer is read
var ErrInputClosed = errors.New("input closed")

// LinePrompter asks questions one line at a time. It is used when stdin is
// not a terminal or when --plain is set.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*LinePrompter)(nil)

// NewLinePrompter creates a new LinePrompter reading from in and writing to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ChooseAction prints the menu and reads keys until a valid one is entered
func (p *LinePrompter) ChooseAction(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryAction, error) {
	keys := make([]string, 0, len(domain.RecoveryActions))
	fmt.Fprintln(p.out, "Choose an action:")
	for _, info := range domain.RecoveryActions {
		fmt.Fprintf(p.out, "  %-11s %s\n", info.Label, info.Description)
		keys = append(keys, info.Action.Key())
	}
	question := fmt.Sprintf("Your choice [%s]: ", strings.Join(keys, "/"))

	for {
		answer, err := p.ask(ctx, question)
		if err != nil {
			return 0, err
		}
		if action, ok := domain.ParseRecoveryAction(strings.ToLower(answer)); ok {
			return action, nil
		}
		logging.Logger.Debug("Invalid recovery key", "input", answer)
		fmt.Fprintf(p.out, "Invalid choice %q\n", answer)
	}
}

// Confirm asks question and treats only "y" as yes
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question+" [y/N]: ")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

func (p *LinePrompter) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A last unterminated line is still an answer
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
