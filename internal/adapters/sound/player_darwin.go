//go:build darwin

package sound

import (
	"errors"
	"os/exec"

	"github.com/renato0307/chronopick/internal/ports"
)

// playForEvent plays sounds on macOS using afplay
func playForEvent(event ports.SoundEvent) error {
	var soundFiles []string

	switch event {
	case ports.SoundConflict:
		soundFiles = []string{
			"/System/Library/Sounds/Basso.aiff",
			"/System/Library/Sounds/Funk.aiff",
		}
	default:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return errors.New("afplay unavailable")
}
