package audio

import (
	"fmt"
	"sync"
)

// State is the playback lifecycle of one audio overview:
// Idle → Loading → Ready → Playing ⇄ Paused → Idle, with Loading → Failed
// on synthesis error. From Failed only Idle (dismiss) is reachable.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Player tracks one audio overview's playback state and owns its decoded
// buffer. The buffer never outlives the player: Stop and Close release it.
type Player struct {
	mu      sync.Mutex
	state   State
	buffer  *Buffer
	lastErr error
}

func NewPlayer() *Player {
	return &Player{state: StateIdle}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the synthesis error after a failed load.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Buffer returns the held buffer, nil unless Ready, Playing or Paused.
func (p *Player) Buffer() *Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buffer
}

// BeginLoad transitions Idle → Loading.
func (p *Player) BeginLoad() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateIdle {
		return p.invalid("begin load")
	}
	p.state = StateLoading
	p.lastErr = nil
	return nil
}

// Ready transitions Loading → Ready and takes ownership of the buffer.
func (p *Player) Ready(buf *Buffer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateLoading {
		return p.invalid("ready")
	}
	p.state = StateReady
	p.buffer = buf
	return nil
}

// Fail transitions Loading → Failed, recording the synthesis error.
func (p *Player) Fail(err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateLoading {
		return p.invalid("fail")
	}
	p.state = StateFailed
	p.lastErr = err
	p.buffer = nil
	return nil
}

// Play transitions Ready or Paused → Playing.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateReady && p.state != StatePaused {
		return p.invalid("play")
	}
	p.state = StatePlaying
	return nil
}

// Pause transitions Playing → Paused.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StatePlaying {
		return p.invalid("pause")
	}
	p.state = StatePaused
	return nil
}

// Stop returns the player to Idle from any state and releases the buffer.
// This is the dismiss path, valid from Failed as well.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateIdle
	p.buffer = nil
	p.lastErr = nil
}

// Close releases held resources. Equivalent to Stop; callers use it when the
// owning view goes away.
func (p *Player) Close() {
	p.Stop()
}

func (p *Player) invalid(action string) error {
	return fmt.Errorf("cannot %s while %s", action, p.state)
}
