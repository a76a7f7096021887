//go:build linux

package sound

import (
	"errors"
	"os"
	"os/exec"

	"github.com/renato0307/chronopick/internal/ports"
)

// playForEvent plays freedesktop theme sounds with paplay, then aplay
func playForEvent(event ports.SoundEvent) error {
	soundFile := "/usr/share/sounds/freedesktop/stereo/complete.oga"
	if event == ports.SoundConflict {
		soundFile = "/usr/share/sounds/freedesktop/stereo/dialog-warning.oga"
	}
	if _, err := os.Stat(soundFile); err != nil {
		return err
	}

	for _, player := range []string{"paplay", "aplay"} {
		if _, err := exec.LookPath(player); err != nil {
			continue
		}
		if err := exec.Command(player, soundFile).Start(); err == nil {
			return nil
		}
	}

	return errors.New("no audio player found")
}
