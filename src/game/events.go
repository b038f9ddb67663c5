package game

import "time"

//EventKind enumerates the abstract input events the loop reacts to
type EventKind int

const (
	EventNone   EventKind = iota //delivered by sources for anything the loop should ignore
	EventToggle                  //primary click or drag at X, Y
	EventExit
	EventPause
	EventSpeed  //Faster selects between halving and doubling the interval
	EventResize //the viewport changed to Width x Height
)

//Event is one abstract input event delivered by an EventSource
type Event struct {
	Kind   EventKind
	X      int
	Y      int
	Faster bool
	Width  int
	Height int
}

//EventSource delivers abstract input events
//Poll must return ok == false promptly once the timeout elapses with no
//event, a failed poll attempt counts as no event too
type EventSource interface {
	Poll(timeout time.Duration) (event Event, ok bool)
}

//Renderer displays the board
//the life log carries the born/died emphasis of the latest generation and
//status the loop's counters, both valid for this call only: a renderer
//that draws asynchronously must copy what it needs before returning
type Renderer interface {
	Render(b *Board, log LifeLog, status Status) error
}
