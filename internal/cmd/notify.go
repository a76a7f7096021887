package cmd

import (
	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// notifyingReporter plays a sound when a conflict needs the operator and
// when the replay is over
type notifyingReporter struct {
	ports.ReplayReporter
	player ports.SoundPlayer
}

func newNotifyingReporter(inner ports.ReplayReporter, player ports.SoundPlayer) *notifyingReporter {
	return &notifyingReporter{ReplayReporter: inner, player: player}
}

func (r *notifyingReporter) ConflictHeader(change domain.ChangeRecord) {
	r.play(ports.SoundConflict)
	r.ReplayReporter.ConflictHeader(change)
}

func (r *notifyingReporter) Summary(summary domain.ReplaySummary) {
	r.ReplayReporter.Summary(summary)
	r.play(ports.SoundFinished)
}

func (r *notifyingReporter) play(event ports.SoundEvent) {
	if err := r.player.PlaySoundForEvent(event); err != nil {
		logging.Logger.Warn("Failed to play notification sound", "event", event, "error", err)
	}
}
