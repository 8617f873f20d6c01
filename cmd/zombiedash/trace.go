package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-dash/internal/trace"
)

var (
	flagTraceDump bool
	flagTraceType string
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Summarize a recorded event trace",
	Long: `Read a trace written by 'zombiedash sim --trace' and print what happened:
levels played, actors spawned and killed, sounds requested and level outcomes.

With --dump every record is printed instead, optionally only those of one
--type (level_start, spawn, death, sound, outcome).

Examples:
  zombiedash trace run.jsonl.zst
  zombiedash trace run.jsonl.zst --dump --type death`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().BoolVar(&flagTraceDump, "dump", false, "Print every record")
	traceCmd.Flags().StringVar(&flagTraceType, "type", "", "Only dump records of this type")
}

func runTrace(cmd *cobra.Command, args []string) {
	path := args[0]

	if flagTraceDump {
		err := trace.Read(path, func(r trace.Record) error {
			if flagTraceType != "" && r.Type != flagTraceType {
				return nil
			}
			fmt.Printf("%6d  L%-2d  %-11s", r.Tick, r.Level, r.Type)
			if r.Kind != "" {
				fmt.Printf("  #%d %s (%.0f,%.0f)", r.Actor, r.Kind, r.X, r.Y)
			}
			if r.Sound != "" {
				fmt.Printf("  %s", r.Sound)
			}
			if r.Status != "" {
				fmt.Printf("  %s", r.Status)
			}
			fmt.Println()
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
			os.Exit(1)
		}
		return
	}

	s, err := trace.Summarize(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Trace %s\n", path)
	fmt.Println()
	fmt.Printf("  Records:   %d\n", s.Records)
	fmt.Printf("  Last tick: %d\n", s.LastTick)
	fmt.Printf("  Levels:    %v\n", s.Levels)
	fmt.Printf("  Outcomes:  %v\n", s.Outcomes)

	printCounts("Spawns", s.Spawns)
	printCounts("Deaths", s.Deaths)
	printCounts("Sounds", s.Sounds)
}

func printCounts(title string, counts map[string]int) {
	fmt.Println()
	fmt.Printf("%s:\n", title)
	if len(counts) == 0 {
		fmt.Println("  (none)")
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, counts[name])
	}
}
