//go:build !darwin && !linux && !windows

package sound

import (
	"errors"

	"github.com/renato0307/chronopick/internal/ports"
)

// playForEvent has no system sound on unsupported platforms
func playForEvent(event ports.SoundEvent) error {
	return errors.New("unsupported platform")
}
