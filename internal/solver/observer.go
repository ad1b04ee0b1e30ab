package solver

import (
	"sync"

	"github.com/avolkov/nurikabe/internal/grid"
)

// Frame is one committed cell together with the board that followed it.
// Frames cover only main-line commits; speculative probe work is invisible.
type Frame struct {
	Cell  grid.Coord
	State grid.State
	Grid  [][]grid.State
}

// Observer receives solve progress. Publish must not block: the solver calls
// it inline between deductions.
type Observer interface {
	Publish(Frame)
}

// ChannelObserver delivers frames over a buffered channel. When a slow
// consumer lets the buffer fill, the oldest frame is dropped so the solver
// never stalls on rendering.
type ChannelObserver struct {
	frames    chan Frame
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelObserver creates an observer buffering up to size frames.
func NewChannelObserver(size int) *ChannelObserver {
	if size < 1 {
		size = 64
	}
	return &ChannelObserver{
		frames: make(chan Frame, size),
		done:   make(chan struct{}),
	}
}

// Publish queues a frame, dropping the oldest pending frame when full.
func (o *ChannelObserver) Publish(f Frame) {
	select {
	case <-o.done:
		return
	default:
	}

	select {
	case o.frames <- f:
	default:
		select {
		case <-o.frames:
		default:
		}
		select {
		case o.frames <- f:
		default:
		}
	}
}

// Frames returns the channel the consumer reads from.
func (o *ChannelObserver) Frames() <-chan Frame {
	return o.frames
}

// Done closes when the observer is shut down; readers select on it to stop.
func (o *ChannelObserver) Done() <-chan struct{} {
	return o.done
}

// Close stops delivery. Buffered frames stay readable. Safe to call
// multiple times.
func (o *ChannelObserver) Close() {
	o.closeOnce.Do(func() {
		close(o.done)
	})
}
