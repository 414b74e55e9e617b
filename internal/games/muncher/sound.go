package muncher

// Sound plays audio on behalf of the simulation.
// Calls are fire-and-forget and must not block.
type Sound interface {
	PlayCue(id string)
	SetLoopingMusic(id string)
}

// NopSound discards all audio requests.
type NopSound struct{}

// PlayCue implements Sound.
func (NopSound) PlayCue(string) {}

// SetLoopingMusic implements Sound.
func (NopSound) SetLoopingMusic(string) {}
