package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/janjanko/fcfs/api"
	"github.com/janjanko/fcfs/config"
	"github.com/janjanko/fcfs/internal/collect"
	"github.com/janjanko/fcfs/internal/core"
	"github.com/janjanko/fcfs/internal/input"
	"github.com/janjanko/fcfs/internal/render"
	"github.com/janjanko/fcfs/internal/schedulers"
	"github.com/janjanko/fcfs/internal/workset"
)

var (
	flagPort    int
	flagTheme   string
	flagWidth   int
	flagNoGantt bool
	flagJSON    bool
	flagLimit   int
)

func main() {
	cfg := config.GetSchedulerConfig()

	rootCmd := &cobra.Command{
		Use:   "fcfs",
		Short: "First-come-first-served CPU schedule planner",
		Long: `fcfs plans non-preemptive first-come-first-served schedules for a set
of processes and reports per-process timing plus aggregate CPU metrics.

Process sets come from a CSV or JSON file (run), from the live host
(sample), or over an HTTP API (serve).`,
	}

	rootCmd.AddCommand(serveCmd(cfg))
	rootCmd.AddCommand(runCmd(cfg))
	rootCmd.AddCommand(sampleCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(cfg *config.SchedulerConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fiber.New()
			app.Use(recover.New())
			app.Use(logger.New())

			api.Register(app, api.NewSchedulerHandlerImpl(cfg, workset.New()))

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
			go func() {
				<-stop
				log.Println("shutting down")
				if err := app.Shutdown(); err != nil {
					log.Printf("shutdown: %v", err)
				}
			}()

			log.Printf("listening on :%d", flagPort)
			return app.Listen(fmt.Sprintf(":%d", flagPort))
		},
	}

	cmd.Flags().IntVar(&flagPort, "port", cfg.Port, "HTTP listen port")

	return cmd
}

func runCmd(cfg *config.SchedulerConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Schedule processes from a CSV or JSON file and print the plan",
		Long: `Reads process rows from the given file (or stdin when omitted), plans
the schedule and prints the timing table, timeline and aggregates.

CSV rows are "arrival,burst" or "name,arrival,burst"; lines starting
with # are skipped. Files ending in .json, or any input with --json,
are parsed as a JSON array of process objects.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			entries, err := loadEntries(path)
			if err != nil {
				return err
			}
			if len(entries) > cfg.MaxProcesses {
				return fmt.Errorf("too many processes: %d exceeds limit of %d", len(entries), cfg.MaxProcesses)
			}

			set := workset.New()
			processes, err := set.AddAll(entries)
			if err != nil {
				return err
			}
			return renderSchedule(processes)
		},
	}

	cmd.Flags().BoolVar(&flagJSON, "json", false, "Parse input as JSON regardless of file extension")
	cmd.Flags().StringVar(&flagTheme, "theme", cfg.Theme, "Color theme (dark, light, mono)")
	cmd.Flags().IntVar(&flagWidth, "width", cfg.GanttWidth, "Timeline width in cells")
	cmd.Flags().BoolVar(&flagNoGantt, "no-gantt", false, "Skip the timeline")

	return cmd
}

func sampleCmd(cfg *config.SchedulerConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Schedule a snapshot of the busiest processes on this host",
		Long: `Samples the host process table, keeps the processes with the most
accumulated CPU time and plans them as a scheduling workload: creation
order becomes arrival time, consumed CPU seconds become burst time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := collect.SampleHost(cmd.Context(), flagLimit)
			if err != nil {
				return fmt.Errorf("sample host: %w", err)
			}
			if len(entries) == 0 {
				return fmt.Errorf("no running processes with accumulated CPU time found")
			}
			fmt.Printf("sampled %d processes from the host\n\n", len(entries))

			set := workset.New()
			processes, err := set.AddAll(entries)
			if err != nil {
				return err
			}
			return renderSchedule(processes)
		},
	}

	cmd.Flags().IntVar(&flagLimit, "limit", cfg.SampleLimit, "Number of processes to keep")
	cmd.Flags().StringVar(&flagTheme, "theme", cfg.Theme, "Color theme (dark, light, mono)")
	cmd.Flags().IntVar(&flagWidth, "width", cfg.GanttWidth, "Timeline width in cells")
	cmd.Flags().BoolVar(&flagNoGantt, "no-gantt", false, "Skip the timeline")

	return cmd
}

// loadEntries reads process rows from path, "-" or "" meaning stdin.
func loadEntries(path string) ([]workset.Entry, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if flagJSON || strings.HasSuffix(path, ".json") {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return input.ReadJSON(data)
	}
	return input.ReadCSV(r)
}

// renderSchedule plans the processes and prints table, timeline and summary.
func renderSchedule(processes []core.Process) error {
	schedule, err := schedulers.FirstComeFirstServe(processes)
	if err != nil {
		return err
	}
	m := schedulers.Analyze(schedule)
	theme := render.Theme(flagTheme)

	render.Table(os.Stdout, schedule, m)
	if !flagNoGantt {
		fmt.Println()
		render.Gantt(os.Stdout, schedulers.Timeline(schedule), render.GanttOptions{
			Width: flagWidth,
			Theme: theme,
		})
	}
	fmt.Println()
	render.Summary(os.Stdout, m, theme)
	return nil
}
