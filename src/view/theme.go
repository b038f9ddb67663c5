package view

import "github.com/logrusorgru/aurora"

//Theme holds the glyph used for every cell state
//it is built once at startup and passed into the UI, nothing global
type Theme struct {
	Dead  string
	Alive string
	Born  string
	Died  string
}

//DefaultTheme returns the standard color scheme
//born and died cells keep their color for one generation only
func DefaultTheme() *Theme {
	return &Theme{
		Dead:  "░",
		Alive: aurora.Yellow("█").String(),
		Born:  aurora.Green("█").String(),
		Died:  aurora.Red("█").String(),
	}
}
