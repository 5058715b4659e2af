package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	sealerrors "github.com/mrz1836/seal/internal/errors"
)

// SealTheme returns a Huh theme using the colors from styles.go.
func SealTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	return t
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm presents a yes/no prompt.
// It returns ErrNonInteractiveMode when stdin is not a terminal and
// ErrOperationCanceled when the user aborts.
func Confirm(message string, defaultYes bool) (bool, error) {
	if !IsInteractive() {
		return false, sealerrors.ErrNonInteractiveMode
	}

	confirmed := defaultYes
	_, accessible := os.LookupEnv("ACCESSIBLE")

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)).
		WithTheme(SealTheme()).
		WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, sealerrors.ErrOperationCanceled
		}
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	return confirmed, nil
}
