// Package gantt renders a schedule as a text Gantt chart and a
// per-process timing table.
package gantt

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

// Render writes the titled Gantt chart and the timing table for one
// run to w.
func Render(w io.Writer, title string, segments []sched.ScheduleSegment) {
	outputTitle(w, title)
	outputGantt(w, segments)
	outputTable(w, segments)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, segments []sched.ScheduleSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range segments {
		pad := (8 - len(s.Name)) / 2
		if pad < 0 {
			pad = 0
		}
		padding := strings.Repeat(" ", pad)
		_, _ = fmt.Fprint(w, padding, s.Name, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range segments {
		_, _ = fmt.Fprint(w, formatTime(s.Start), "\t")
		if i == len(segments)-1 {
			_, _ = fmt.Fprint(w, formatTime(s.Finish))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputTable(w io.Writer, segments []sched.ScheduleSegment) {
	details, stats := sched.BuildStats(segments)

	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{
			d.Name,
			formatTime(d.Arrival),
			formatTime(d.Burst),
			formatTime(d.Start),
			formatTime(d.Waiting),
			formatTime(d.Turnaround),
			formatTime(d.Completion),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Arrival", "Burst", "Start", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", stats.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", stats.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", stats.Throughput)})
	table.Render()
}

func formatTime(v float64) string {
	return fmt.Sprintf("%g", v)
}
