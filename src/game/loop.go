package game

import "time"

//PauseState drives the two-step pause machine
//enabling pause keeps the current iteration running and only suppresses
//generation advancement from the following iteration on
type PauseState int

const (
	PauseDisabled PauseState = iota
	PauseJustEnabled
	PauseActivated
)

//frame duration bounds, repeated halving would otherwise reach a zero
//interval
const (
	MinFrameDuration = time.Millisecond
	MaxFrameDuration = 4 * time.Second
)

//Options represents the loop's configurable options
type Options struct {
	FrameDuration time.Duration //interval between the generations
	PollBudget    time.Duration //time slice spent draining input per iteration
}

//default options
var DefaultOptions = Options{
	FrameDuration: 64 * time.Millisecond,
	PollBudget:    16 * time.Millisecond,
}

//Status represents the loop's counters at a concrete moment
type Status struct {
	Generation    int
	LiveCells     int
	StepTime      time.Duration //evaluation time of the last generation
	Paused        bool
	FrameDuration time.Duration
}

//Loop is the simulation driver
//it exclusively owns the board and mutates it from input events and from
//the fixed-rate generation step
type Loop struct {
	board         *Board
	frameDuration time.Duration
	pollBudget    time.Duration
	pause         PauseState
	lastAdvanced  time.Time
	log           LifeLog
	status        Status
	renderer      Renderer
	events        EventSource
}

//NewLoop creates the loop around an already seeded board
func NewLoop(b *Board, r Renderer, es EventSource, o *Options) *Loop {
	if o == nil {
		o = &DefaultOptions
	}
	l := &Loop{
		board:         b,
		frameDuration: clampFrameDuration(o.FrameDuration),
		pollBudget:    o.PollBudget,
		log:           LifeLog{},
		renderer:      r,
		events:        es,
		lastAdvanced:  time.Now(),
	}
	l.status.LiveCells = b.LiveCells()
	l.status.FrameDuration = l.frameDuration
	return l
}

//Status returns the loop's counters for display
func (l *Loop) Status() Status {
	return l.status
}

//Run drives iterations until an exit event arrives or rendering fails
func (l *Loop) Run() error {
	for {
		exit, err := l.iterate()
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

//iterate performs one full cycle: render, drain input, then advance the
//generation when the frame interval has elapsed and the loop is not paused
func (l *Loop) iterate() (exit bool, err error) {
	start := time.Now()
	shouldAdvance := start.After(l.lastAdvanced.Add(l.frameDuration))

	if err = l.renderer.Render(l.board, l.log, l.status); err != nil {
		return false, err
	}

	for {
		timeout := l.pollBudget - time.Since(start)
		if timeout <= 0 {
			break
		}
		event, ok := l.events.Poll(timeout)
		if !ok {
			continue
		}
		l.handle(event, &exit)
	}

	paused := false
	switch l.pause {
	case PauseJustEnabled:
		//the iteration that saw the pause key still advances
		l.pause = PauseActivated
	case PauseActivated:
		paused = true
	}

	if shouldAdvance && !paused {
		stepStart := time.Now()
		Advance(l.board, l.log)
		l.lastAdvanced = time.Now()
		l.status.Generation++
		l.status.LiveCells = l.board.LiveCells()
		l.status.StepTime = time.Since(stepStart)
	}
	l.status.Paused = l.pause == PauseActivated
	l.status.FrameDuration = l.frameDuration
	return exit, nil
}

//handle applies a single input event to the loop state
func (l *Loop) handle(event Event, exit *bool) {
	switch event.Kind {
	case EventToggle:
		p := Position{event.X, event.Y}
		//clicks outside the board are ignored
		if l.board.CheckIndex(p) {
			l.board.Flip(p)
			l.status.LiveCells = l.board.LiveCells()
		}
	case EventExit:
		*exit = true
	case EventPause:
		if l.pause != PauseDisabled {
			l.pause = PauseDisabled
		} else {
			l.pause = PauseJustEnabled
		}
	case EventSpeed:
		if event.Faster {
			l.frameDuration = clampFrameDuration(l.frameDuration / 2)
		} else {
			l.frameDuration = clampFrameDuration(l.frameDuration * 2)
		}
	case EventResize:
		resized, err := Resize(l.board, event.Width, event.Height)
		if err != nil {
			//a degenerate viewport keeps the old board
			return
		}
		l.board = resized
		l.status.LiveCells = l.board.LiveCells()
	}
}

//clampFrameDuration keeps the interval inside the allowed bounds
func clampFrameDuration(d time.Duration) time.Duration {
	if d < MinFrameDuration {
		return MinFrameDuration
	}
	if d > MaxFrameDuration {
		return MaxFrameDuration
	}
	return d
}
