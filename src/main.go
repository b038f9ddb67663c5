package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"golife/src/game"
	"golife/src/view"
)

type envOptions struct {
	width    int
	height   int
	interval time.Duration
	maxSteps int
	template string
	random   bool
	headless bool
}

func main() {
	o := initOptions()
	if o.headless {
		runHeadless(o)
		return
	}
	runTerminal(o)
}

func initOptions() *envOptions {
	o := &envOptions{
		interval: game.DefaultOptions.FrameDuration,
		maxSteps: 1000,
		template: "diagonal",
	}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.width, "x", "width", "Width of the field (0 takes the terminal width)")
	flaggy.Int(&o.height, "y", "height", "Height of the field (0 takes the terminal height)")
	flaggy.Duration(&o.interval, "i", "interval", "Interval between the generations, for example 150ms")
	flaggy.Int(&o.maxSteps, "s", "maxSteps", "Limit a headless simulation to maxSteps generations")
	flaggy.String(&o.template, "t", "template", "Seeding template ["+strings.Join(templateNames(), "|")+"]")
	flaggy.Bool(&o.random, "r", "random", "Seed with random data instead of a template")
	flaggy.Bool(&o.headless, "l", "headless", "Run without the terminal UI")

	flaggy.Parse()

	if _, ok := game.Templates[o.template]; !ok && !o.random {
		flaggy.ShowHelpAndExit("unknown template " + o.template)
	}
	return o
}

func templateNames() []string {
	names := make([]string, 0, len(game.Templates))
	for k := range game.Templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func seed(b *game.Board, o *envOptions) {
	if o.random {
		b.SettleRandom()
		return
	}
	b.Settle(game.Templates[o.template])
}

func runTerminal(o *envOptions) {
	ui, err := view.NewTermUI(view.DefaultTheme())
	if err != nil {
		fail(err)
	}

	w, h := ui.Size()
	if o.width > 0 {
		w = o.width
	}
	if o.height > 0 {
		h = o.height
	}
	board, err := game.NewBoard(w, h)
	if err != nil {
		ui.Close() //restore the terminal before reporting
		fail(err)
	}
	seed(board, o)

	loop := game.NewLoop(board, ui, ui, &game.Options{
		FrameDuration: o.interval,
		PollBudget:    game.DefaultOptions.PollBudget,
	})

	ui.Start()
	err = loop.Run()
	ui.Stop()
	if werr := ui.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		fail(err)
	}
}

func runHeadless(o *envOptions) {
	w, h := o.width, o.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	board, err := game.NewBoard(w, h)
	if err != nil {
		fail(err)
	}
	seed(board, o)

	out := view.NewConsoleOut()
	out.Begin(board, o.interval, o.maxSteps)

	generation := 0
	for ; generation < o.maxSteps; generation++ {
		if !game.Advance(board, nil) {
			break
		}
		out.Progress(generation+1, board.LiveCells())
		if o.interval > 0 {
			time.Sleep(o.interval)
		}
	}
	out.Finish(generation, board.LiveCells())
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
