package constants

import "time"

// Arrival Chime
const (
	ChimeSampleRate = 44100

	// ChimeBufferDuration is the speaker buffer length
	ChimeBufferDuration = 100 * time.Millisecond

	ChimeNote1Freq     = 880.0
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote1Release  = 60 * time.Millisecond
	ChimeNote2Freq     = 1320.0
	ChimeNote2Duration = 160 * time.Millisecond
	ChimeNote2Release  = 140 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond

	// ChimeVolume is the linear gain applied to the whole chime
	ChimeVolume = 0.25
)
