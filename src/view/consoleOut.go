package view

import (
	"fmt"
	"time"

	"golife/src/game"
)

//ConsoleOut reports simulation progress on plain stdout
//used for headless runs without the terminal UI
type ConsoleOut struct {
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

//Begin prints the running configuration and starts the clock
func (c *ConsoleOut) Begin(b *game.Board, interval time.Duration, maxSteps int) {
	c.startTime = time.Now()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", b.Width(), b.Height())
	fmt.Printf("  Interval: %v\n", interval)
	fmt.Printf("  Max generations: %v\n", maxSteps)
	fmt.Println("\nSimulation started...")
}

//Progress prints a line every tenth generation
func (c *ConsoleOut) Progress(generation int, liveCells int) {
	if generation%10 == 0 {
		fmt.Printf("  Generation: %v, live cells: %v\n", generation, liveCells)
	}
}

//Finish prints the final counters and the total running time
func (c *ConsoleOut) Finish(generation int, liveCells int) {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Println("\nFinished:")
	fmt.Printf("  Last generation: %v\n", generation)
	fmt.Printf("  Live cells: %v\n", liveCells)
	fmt.Printf("  Total time: %v\n", totalTime)
}
