package game

import (
	"errors"
	"testing"
	"time"
)

//scriptedEvents replays a fixed list of events, then behaves like an idle
//input source by sleeping out the poll timeout
type scriptedEvents struct {
	events []Event
}

func (s *scriptedEvents) Poll(timeout time.Duration) (Event, bool) {
	if len(s.events) == 0 {
		time.Sleep(timeout)
		return Event{}, false
	}
	e := s.events[0]
	s.events = s.events[1:]
	return e, true
}

type nullRenderer struct {
	calls int
	err   error
}

func (r *nullRenderer) Render(*Board, LifeLog, Status) error {
	r.calls++
	return r.err
}

//testOptions keeps iterations short and, with the long frame duration,
//prevents generation advances from interfering with event tests
var testOptions = Options{
	FrameDuration: MaxFrameDuration,
	PollBudget:    time.Millisecond,
}

func TestLoopExitEvent(t *testing.T) {
	r := &nullRenderer{}
	es := &scriptedEvents{events: []Event{{Kind: EventExit}}}
	l := NewLoop(mustBoard(t, 4, 4), r, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if r.calls != 1 {
		t.Errorf("renderer called %v times, want 1", r.calls)
	}
}

func TestLoopRenderErrorEscalates(t *testing.T) {
	want := errors.New("render broke")
	r := &nullRenderer{err: want}
	es := &scriptedEvents{}
	l := NewLoop(mustBoard(t, 4, 4), r, es, &testOptions)
	if err := l.Run(); err != want {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestLoopToggle(t *testing.T) {
	es := &scriptedEvents{events: []Event{
		{Kind: EventToggle, X: 1, Y: 1},
		{Kind: EventToggle, X: 9, Y: 9}, //outside, ignored
		{Kind: EventExit},
	}}
	l := NewLoop(mustBoard(t, 4, 4), &nullRenderer{}, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.board.Get(Position{1, 1}) != Live {
		t.Error("click should have toggled cell 1,1")
	}
	if l.board.LiveCells() != 1 {
		t.Errorf("got %v live cells, want 1", l.board.LiveCells())
	}
	if l.Status().LiveCells != 1 {
		t.Errorf("status reports %v live cells, want 1", l.Status().LiveCells)
	}
}

func TestLoopToggleTwiceKills(t *testing.T) {
	es := &scriptedEvents{events: []Event{
		{Kind: EventToggle, X: 2, Y: 2},
		{Kind: EventToggle, X: 2, Y: 2},
		{Kind: EventExit},
	}}
	l := NewLoop(mustBoard(t, 4, 4), &nullRenderer{}, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.board.LiveCells() != 0 {
		t.Error("two toggles on the same cell should cancel out")
	}
}

func TestLoopResizeEvent(t *testing.T) {
	es := &scriptedEvents{events: []Event{
		{Kind: EventToggle, X: 0, Y: 0},
		{Kind: EventResize, Width: 8, Height: 5},
		{Kind: EventExit},
	}}
	l := NewLoop(mustBoard(t, 4, 4), &nullRenderer{}, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.board.Width() != 8 || l.board.Height() != 5 {
		t.Fatalf("got %vx%v, want 8x5", l.board.Width(), l.board.Height())
	}
	if l.board.Get(Position{0, 0}) != Live {
		t.Error("live cell lost on resize")
	}
}

func TestLoopResizeToZeroKeepsBoard(t *testing.T) {
	es := &scriptedEvents{events: []Event{
		{Kind: EventResize, Width: 0, Height: 5},
		{Kind: EventExit},
	}}
	l := NewLoop(mustBoard(t, 4, 4), &nullRenderer{}, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.board.Width() != 4 || l.board.Height() != 4 {
		t.Error("a degenerate resize should keep the old board")
	}
}

func TestLoopSpeedClamp(t *testing.T) {
	faster := make([]Event, 0, 40)
	for i := 0; i < 40; i++ {
		faster = append(faster, Event{Kind: EventSpeed, Faster: true})
	}
	es := &scriptedEvents{events: append(faster, Event{Kind: EventExit})}
	l := NewLoop(mustBoard(t, 4, 4), &nullRenderer{}, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.frameDuration != MinFrameDuration {
		t.Errorf("got %v, want the %v floor", l.frameDuration, MinFrameDuration)
	}

	slower := make([]Event, 0, 40)
	for i := 0; i < 40; i++ {
		slower = append(slower, Event{Kind: EventSpeed, Faster: false})
	}
	es = &scriptedEvents{events: append(slower, Event{Kind: EventExit})}
	l = NewLoop(mustBoard(t, 4, 4), &nullRenderer{}, es, &testOptions)
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.frameDuration != MaxFrameDuration {
		t.Errorf("got %v, want the %v ceiling", l.frameDuration, MaxFrameDuration)
	}
}

func TestLoopPauseStateMachine(t *testing.T) {
	b := mustBoard(t, 6, 6)
	b.Settle(Templates["blinker"])
	es := &scriptedEvents{}
	l := NewLoop(b, &nullRenderer{}, es, &Options{
		FrameDuration: MinFrameDuration,
		PollBudget:    time.Millisecond,
	})

	//the iteration that sees the pause key still advances
	l.lastAdvanced = time.Time{}
	es.events = []Event{{Kind: EventPause}}
	if _, err := l.iterate(); err != nil {
		t.Fatal(err)
	}
	if l.Status().Generation != 1 {
		t.Fatalf("generation %v after pause press, want 1", l.Status().Generation)
	}
	if l.pause != PauseActivated {
		t.Fatalf("pause state %v, want %v", l.pause, PauseActivated)
	}

	//once activated, no iteration advances
	l.lastAdvanced = time.Time{}
	if _, err := l.iterate(); err != nil {
		t.Fatal(err)
	}
	if l.Status().Generation != 1 {
		t.Error("paused loop advanced a generation")
	}
	if !l.Status().Paused {
		t.Error("status should report paused")
	}

	//a second pause press resumes immediately
	l.lastAdvanced = time.Time{}
	es.events = []Event{{Kind: EventPause}}
	if _, err := l.iterate(); err != nil {
		t.Fatal(err)
	}
	if l.pause != PauseDisabled {
		t.Fatalf("pause state %v, want %v", l.pause, PauseDisabled)
	}
	if l.Status().Generation != 2 {
		t.Errorf("generation %v after resume, want 2", l.Status().Generation)
	}
}

//asyncRenderer hands everything off to a background goroutine the way the
//terminal front end hands work to the gocui goroutine: the board is cloned
//and the status is a value, so the reader never touches the loop's live
//state
type asyncRenderer struct {
	frames chan renderFrame
	done   chan struct{}
	last   Status
}

type renderFrame struct {
	board  *Board
	status Status
}

func newAsyncRenderer() *asyncRenderer {
	r := &asyncRenderer{
		frames: make(chan renderFrame, 16),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		for f := range r.frames {
			//read every field, the race detector flags any aliasing
			//of the loop's own state
			_ = f.board.LiveCells()
			r.last = f.status
		}
	}()
	return r
}

func (r *asyncRenderer) Render(b *Board, log LifeLog, status Status) error {
	select {
	case r.frames <- renderFrame{board: b.Clone(), status: status}:
	default:
	}
	return nil
}

func (r *asyncRenderer) stop() {
	close(r.frames)
	<-r.done
}

//trickleEvents delivers one event per poll with a small delay, spreading
//the script over many loop iterations
type trickleEvents struct {
	events []Event
}

func (s *trickleEvents) Poll(timeout time.Duration) (Event, bool) {
	if len(s.events) == 0 {
		time.Sleep(timeout)
		return Event{}, false
	}
	time.Sleep(200 * time.Microsecond)
	e := s.events[0]
	s.events = s.events[1:]
	return e, true
}

func TestLoopConcurrentRendererReads(t *testing.T) {
	events := make([]Event, 0, 201)
	for i := 0; i < 200; i++ {
		events = append(events, Event{Kind: EventToggle, X: i % 6, Y: (i / 6) % 6})
	}
	events = append(events, Event{Kind: EventExit})

	r := newAsyncRenderer()
	l := NewLoop(mustBoard(t, 6, 6), r, &trickleEvents{events: events}, &Options{
		FrameDuration: MinFrameDuration,
		PollBudget:    time.Millisecond,
	})
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	r.stop()
	if l.Status().Generation == 0 {
		t.Error("loop never advanced while the reader was running")
	}
	if r.last.Generation > l.Status().Generation {
		t.Errorf("reader saw generation %v, loop only reached %v",
			r.last.Generation, l.Status().Generation)
	}
}

func TestLoopAdvancePacing(t *testing.T) {
	b := mustBoard(t, 6, 6)
	b.Settle(Templates["blinker"])
	l := NewLoop(b, &nullRenderer{}, &scriptedEvents{}, &Options{
		FrameDuration: MaxFrameDuration,
		PollBudget:    time.Millisecond,
	})

	//frame interval not yet elapsed, no advance
	if _, err := l.iterate(); err != nil {
		t.Fatal(err)
	}
	if l.Status().Generation != 0 {
		t.Error("loop advanced before the frame interval elapsed")
	}

	//pretend the interval passed long ago
	l.lastAdvanced = time.Time{}
	if _, err := l.iterate(); err != nil {
		t.Fatal(err)
	}
	if l.Status().Generation != 1 {
		t.Errorf("generation %v after the interval elapsed, want 1", l.Status().Generation)
	}
	if l.Status().LiveCells != 3 {
		t.Errorf("status reports %v live cells, want 3", l.Status().LiveCells)
	}
}
