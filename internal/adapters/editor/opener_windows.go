//go:build windows

package editor

import "os/exec"

var defaultEditors = []string{
	"code.cmd",
	"notepad.exe",
}

func findPlatformEditor() (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			if editor == "code.cmd" {
				return editor, []string{"--wait"}
			}
			return editor, nil
		}
	}
	return "", nil
}
