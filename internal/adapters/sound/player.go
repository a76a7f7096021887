package sound

import (
	"fmt"
	"io"
	"os"

	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// Player implements ports.SoundPlayer
type Player struct {
	bell io.Writer
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player that falls back to the terminal bell
// on stderr
func NewPlayer() *Player {
	return &Player{bell: os.Stderr}
}

// PlaySoundForEvent plays the sound for event. Platform-specific
// implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(event ports.SoundEvent) error {
	if err := playForEvent(event); err != nil {
		logging.Logger.Debug("No system sound played, ringing the bell", "event", event, "error", err)
		return p.terminalBell()
	}
	return nil
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
