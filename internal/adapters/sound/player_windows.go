//go:build windows

package sound

import (
	"os/exec"

	"github.com/renato0307/chronopick/internal/ports"
)

// playForEvent plays the Windows system sounds through PowerShell
func playForEvent(event ports.SoundEvent) error {
	sound := "Asterisk"
	if event == ports.SoundConflict {
		sound = "Exclamation"
	}
	return exec.Command("powershell", "-NoProfile", "-Command",
		"[System.Media.SystemSounds]::"+sound+".Play()").Start()
}
