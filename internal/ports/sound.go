package ports

// SoundEvent identifies what a notification sound announces
type SoundEvent string

const (
	SoundConflict SoundEvent = "conflict"
	SoundFinished SoundEvent = "finished"
)

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	PlaySoundForEvent(event SoundEvent) error
}
