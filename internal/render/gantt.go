package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/janjanko/fcfs/internal/core"
)

// DefaultGanttWidth is the target bar-area width in terminal cells.
const DefaultGanttWidth = 60

// GanttOptions control timeline geometry and styling.
type GanttOptions struct {
	Width int // bar-area width in cells; <= 0 selects DefaultGanttWidth
	Theme Theme
}

type segment struct {
	label string
	width int
	stop  int
	color sprintFunc
	idle  bool
}

// Gantt writes a proportional timeline of the occupied slices: a label
// line, a bar line and a time axis. Busy intervals render as solid bars
// colored per process, idle gaps as dimmed filler. Slices must be in
// execution order, which is how the scheduler emits them.
func Gantt(w io.Writer, slices []core.TimeSlice, opts GanttOptions) {
	style := Lookup(opts.Theme)
	if len(slices) == 0 {
		fmt.Fprintln(w, style.Idle("(no processes scheduled)"))
		return
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultGanttWidth
	}
	makespan := slices[len(slices)-1].Stop
	scale := float64(width) / float64(makespan)

	var segments []segment
	cursor := 0
	for _, sl := range slices {
		if sl.Start > cursor {
			segments = append(segments, segment{
				width: cells(sl.Start-cursor, scale),
				stop:  sl.Start,
				idle:  true,
			})
		}
		segments = append(segments, segment{
			label: sl.Name,
			width: cells(sl.Stop-sl.Start, scale),
			stop:  sl.Stop,
			color: style.Bar(sl.ID),
		})
		cursor = sl.Stop
	}

	var labels, bars, axis strings.Builder
	axis.WriteString("0")
	axisLen := 1
	col := 0
	for _, seg := range segments {
		col += seg.width
		if seg.idle {
			labels.WriteString(strings.Repeat(" ", seg.width))
			bars.WriteString(style.Idle(strings.Repeat("░", seg.width)))
		} else {
			labels.WriteString(seg.color(center(seg.label, seg.width)))
			bars.WriteString(seg.color(strings.Repeat("█", seg.width)))
		}

		// The axis mark for each boundary starts under the segment's
		// right edge; a minimum gap of one keeps adjacent marks apart.
		mark := fmt.Sprint(seg.stop)
		pad := col - axisLen
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad))
		axis.WriteString(mark)
		axisLen += pad + len(mark)
	}

	fmt.Fprintln(w, labels.String())
	fmt.Fprintln(w, bars.String())
	fmt.Fprintln(w, axis.String())
}

// cells converts a duration to a cell count, keeping every non-empty
// interval at least one cell wide so it stays visible.
func cells(duration int, scale float64) int {
	if duration <= 0 {
		return 0
	}
	n := int(math.Round(float64(duration) * scale))
	if n < 1 {
		return 1
	}
	return n
}

// center pads or truncates s to exactly width cells.
func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
