package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/janjanko/fcfs/internal/core"
)

// Table writes the schedule as a bordered table in execution order, with
// the two average metrics in the footer rounded to two decimals.
func Table(w io.Writer, schedule []core.ScheduledProcess, m core.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Arrival", "Burst", "Start", "Completion", "Waiting", "Turnaround"})

	rows := make([][]string, 0, len(schedule))
	for _, sp := range schedule {
		rows = append(rows, []string{
			fmt.Sprint(sp.ID),
			sp.Name,
			fmt.Sprint(sp.Arrival),
			fmt.Sprint(sp.Burst),
			fmt.Sprint(sp.Start),
			fmt.Sprint(sp.Completion),
			fmt.Sprint(sp.Waiting),
			fmt.Sprint(sp.Turnaround),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Avg %.2f", m.AverageWaiting),
		fmt.Sprintf("Avg %.2f", m.AverageTurnaround),
	})
	table.Render()
}

// Summary writes the remaining aggregates as a single line under the table.
func Summary(w io.Writer, m core.Metrics, theme Theme) {
	style := Lookup(theme)
	fmt.Fprintln(w, style.Footer(fmt.Sprintf(
		"total time %d | idle %d | utilization %.1f%% | throughput %.2f/t",
		m.TotalTime, m.IdleTime, m.CPUUtilization*100, m.Throughput)))
}
