package view

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/src/game"
)

const (
	leftColumnWidth = 28
	minWindowHeight = 14
	eventBuffer     = 64
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//TermUI is the gocui terminal front end
//it implements both collaborator contracts of the control loop: it renders
//the board and it delivers abstract input events translated from keyboard,
//mouse and terminal resizes
type TermUI struct {
	g      *gocui.Gui
	theme  *Theme
	k      []keyBindings
	events chan game.Event
	done   chan error

	//latest snapshot handed over by Render, read by the gocui goroutine
	board    *game.Board
	emphasis game.LifeLog
	status   game.Status

	fieldW int
	fieldH int
}

//NewTermUI sets up the terminal, the key bindings and the layout
func NewTermUI(theme *Theme) (*TermUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Mouse = true

	t := &TermUI{
		g:      g,
		theme:  theme,
		events: make(chan game.Event, eventBuffer),
	}
	t.fieldW, t.fieldH = fieldSize(g.Size())

	t.k = []keyBindings{
		{'q',
			"Q",
			"Exit",
			t.cmdQuit,
			""},
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{gocui.KeySpace,
			"SPACE",
			"Pause/resume",
			t.cmdPause,
			""},
		{'+',
			"+",
			"Faster",
			t.cmdFaster,
			""},
		{'-',
			"-",
			"Slower",
			t.cmdSlower,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"field"},
	}
	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(t.k); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

func (t *TermUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return err
		}
	}
	return nil
}

//Size returns the current dimensions of the board area
func (t *TermUI) Size() (width int, height int) {
	return fieldSize(t.g.Size())
}

//Close releases the terminal without running the event loop
//only needed for setup failures before Start
func (t *TermUI) Close() {
	t.g.Close()
}

//Start runs the terminal event loop in the background
//Wait reports when it has released the terminal
func (t *TermUI) Start() {
	t.done = make(chan error, 1)
	go func() {
		err := t.g.MainLoop()
		if err == gocui.ErrQuit {
			err = nil
		}
		t.g.Close()
		//no handler pushes events past this point, closing tells the
		//control loop to unwind even when MainLoop failed on its own
		close(t.events)
		t.done <- err
	}()
}

//Stop makes the terminal event loop return
func (t *TermUI) Stop() {
	t.g.Update(func(g *gocui.Gui) error { return gocui.ErrQuit })
}

//Wait blocks until the terminal has been restored
func (t *TermUI) Wait() error {
	return <-t.done
}

//Poll waits up to timeout for the next input event
//a closed event stream means the terminal loop is gone and reads as an
//exit request
func (t *TermUI) Poll(timeout time.Duration) (game.Event, bool) {
	select {
	case e, ok := <-t.events:
		if !ok {
			return game.Event{Kind: game.EventExit}, true
		}
		return e, true
	case <-time.After(timeout):
		return game.Event{}, false
	}
}

//Render queues a redraw of the board and the side panels
//the board and the log are copied and the status is already a value, so
//the gocui goroutine never reads the loop's live state
func (t *TermUI) Render(b *game.Board, log game.LifeLog, status game.Status) error {
	snapshot := b.Clone()
	emphasis := make(game.LifeLog, len(log))
	for p, lc := range log {
		emphasis[p] = lc
	}
	t.g.Update(func(g *gocui.Gui) error {
		t.board = snapshot
		t.emphasis = emphasis
		t.status = status
		t.drawField(g)
		t.drawConfiguration(g)
		t.drawStatus(g)
		return nil
	})
	return nil
}

//push hands an event to the control loop, dropping it when the loop is behind
func (t *TermUI) push(e game.Event) {
	select {
	case t.events <- e:
	default:
	}
}

//fieldSize derives the inner dimensions of the board view from the
//terminal dimensions
func fieldSize(maxX int, maxY int) (w int, h int) {
	w = maxX - leftColumnWidth - 3
	h = maxY - 9
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return
}

func (t *TermUI) drawField(g *gocui.Gui) {
	v, err := g.View("field")
	if err != nil || t.board == nil {
		return
	}
	v.Clear()

	maxW, maxH := v.Size()
	var b bytes.Buffer
	for y := 0; y < t.board.Height() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < t.board.Width() && x < maxW; x++ {
			p := game.Position{X: x, Y: y}
			filler := t.theme.Dead
			if t.board.Get(p) == game.Live {
				filler = t.theme.Alive
			}
			if lc, ok := t.emphasis[p]; ok {
				if lc == game.Born {
					filler = t.theme.Born
				} else {
					filler = t.theme.Died
				}
			}
			b.WriteString(filler)
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *TermUI) drawConfiguration(g *gocui.Gui) {
	v, err := g.View("configuration")
	if err != nil || t.board == nil {
		return
	}
	s := t.status
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", t.board.Width(), t.board.Height()))
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", s.FrameDuration))
}

func (t *TermUI) drawStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil || t.board == nil {
		return
	}
	s := t.status
	mode := aurora.Colorize("running", aurora.CyanFg).String()
	if s.Paused {
		mode = aurora.Colorize("paused", aurora.RedFg).String()
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", s.Generation))
	_, _ = fmt.Fprintln(v, renderProp("Live Cells", "%v", s.LiveCells))
	_, _ = fmt.Fprintln(v, renderProp("Evaluation time", "%v", s.StepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *TermUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	t.drawField(g)
	t.drawConfiguration(g)
	t.drawStatus(g)

	//the layout manager runs on every terminal resize
	if w, h := fieldSize(maxX, maxY); w != t.fieldW || h != t.fieldH {
		t.fieldW, t.fieldH = w, h
		t.push(game.Event{Kind: game.EventResize, Width: w, Height: h})
	}
	return nil
}

func (t *TermUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintf(v, "%*s%s", pad, "", text)
	}
	return
}

func (t *TermUI) cmdQuit(_ *gocui.View) error {
	t.push(game.Event{Kind: game.EventExit})
	return nil
}

func (t *TermUI) cmdPause(_ *gocui.View) error {
	t.push(game.Event{Kind: game.EventPause})
	return nil
}

func (t *TermUI) cmdFaster(_ *gocui.View) error {
	t.push(game.Event{Kind: game.EventSpeed, Faster: true})
	return nil
}

func (t *TermUI) cmdSlower(_ *gocui.View) error {
	t.push(game.Event{Kind: game.EventSpeed, Faster: false})
	return nil
}

func (t *TermUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.push(game.Event{Kind: game.EventToggle, X: cx, Y: cy})
	return nil
}
