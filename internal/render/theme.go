// Package render draws computed schedules as tables and Gantt timelines
// for terminal output.
package render

import (
	"fmt"

	"github.com/fatih/color"
)

// Theme selects a style bundle. Unknown ids fall back to ThemeDark.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeMono  Theme = "mono"
)

type sprintFunc func(a ...interface{}) string

// Style is the bundle of sprint functions one theme provides.
type Style struct {
	Header  sprintFunc
	Idle    sprintFunc
	Footer  sprintFunc
	palette []sprintFunc
}

// Bar returns the bar style for a process. The lookup keys on id, so a
// process keeps its color when the schedule is recomputed.
func (s Style) Bar(id int) sprintFunc {
	if len(s.palette) == 0 {
		return fmt.Sprint
	}
	idx := id % len(s.palette)
	if idx < 0 {
		idx += len(s.palette)
	}
	return s.palette[idx]
}

var plain sprintFunc = fmt.Sprint

// styles is a static table: every theme is enumerated here and looked up
// by id, never assembled from strings at run time.
var styles = map[Theme]Style{
	ThemeDark: {
		Header: color.New(color.Bold, color.FgCyan).SprintFunc(),
		Idle:   color.New(color.Faint).SprintFunc(),
		Footer: color.New(color.Bold).SprintFunc(),
		palette: []sprintFunc{
			color.New(color.FgCyan).SprintFunc(),
			color.New(color.FgMagenta).SprintFunc(),
			color.New(color.FgYellow).SprintFunc(),
			color.New(color.FgGreen).SprintFunc(),
			color.New(color.FgHiBlue).SprintFunc(),
			color.New(color.FgHiRed).SprintFunc(),
		},
	},
	ThemeLight: {
		Header: color.New(color.Bold, color.FgBlue).SprintFunc(),
		Idle:   color.New(color.FgHiBlack).SprintFunc(),
		Footer: color.New(color.Bold).SprintFunc(),
		palette: []sprintFunc{
			color.New(color.FgBlue).SprintFunc(),
			color.New(color.FgRed).SprintFunc(),
			color.New(color.FgGreen).SprintFunc(),
			color.New(color.FgMagenta).SprintFunc(),
		},
	},
	ThemeMono: {
		Header: plain,
		Idle:   plain,
		Footer: plain,
	},
}

// Lookup resolves a theme id to its style bundle.
func Lookup(t Theme) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[ThemeDark]
}
