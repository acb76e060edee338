// gieplan-sim generates a watering rotation from a YAML roster and prints
// the plan and its fairness report. It is a thin consumer of the gieplan
// library, useful for tuning configurations before wiring the scheduler
// into an application.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	gieplan "github.com/Krialder/gieplan-plant-watering-scheduler-sub000"
	"github.com/Krialder/gieplan-plant-watering-scheduler-sub000/types"
)

// rosterFile is the YAML document consumed by the simulator: scheduler
// configuration plus the member roster and optional per-member history.
type rosterFile struct {
	Config  gieplan.Config           `yaml:"config"`
	Members []types.Member           `yaml:"members"`
	History map[string]types.History `yaml:"history"`
}

var (
	flagRoster  string
	flagStart   string
	flagPeriods int
	flagSeed    uint64
	flagTemp    float64
)

var rootCmd = &cobra.Command{
	Use:   "gieplan-sim",
	Short: "Simulate watering-rotation batches from a YAML roster",
	RunE:  runSimulation,
}

func init() {
	rootCmd.Flags().StringVarP(&flagRoster, "roster", "r", "roster.yaml", "roster file (config + members)")
	rootCmd.Flags().StringVar(&flagStart, "start", "", "first period start date (YYYY-MM-DD, default today)")
	rootCmd.Flags().IntVarP(&flagPeriods, "periods", "n", 12, "number of periods to generate")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed (overrides roster config when set)")
	rootCmd.Flags().Float64Var(&flagTemp, "temperature", -1, "selection temperature (overrides roster config when >= 0)")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	payload, err := os.ReadFile(flagRoster)
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}
	var roster rosterFile
	if err := yaml.Unmarshal(payload, &roster); err != nil {
		return fmt.Errorf("parse roster: %w", err)
	}

	start := time.Now()
	if flagStart != "" {
		start, err = time.Parse("2006-01-02", flagStart)
		if err != nil {
			return fmt.Errorf("parse start date: %w", err)
		}
	}
	if cmd.Flags().Changed("seed") {
		roster.Config.Seed = flagSeed
	}
	if flagTemp >= 0 {
		roster.Config.Temperature = flagTemp
	}

	sched, err := gieplan.New(&roster.Config)
	if err != nil {
		return err
	}

	res, err := sched.GenerateBatch(&gieplan.GenerateRequest{
		Start:       start,
		PeriodCount: flagPeriods,
		Members:     roster.Members,
		History:     roster.History,
	})
	if err != nil {
		return err
	}

	printPlan(res.Batch)
	printReport(res.Report)
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	return nil
}

func printPlan(batch *types.Batch) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Plan %s", batch.ID)
	t.AppendHeader(table.Row{"#", "Week of", "Primaries", "Substitutes", "Mentor"})
	for _, a := range batch.Assignments {
		mentor := ""
		if a.MentorSatisfied {
			mentor = "yes"
		}
		t.AppendRow(table.Row{
			a.PeriodIndex,
			a.PeriodStart.Format("2006-01-02"),
			strings.Join(a.PrimaryIDs, ", "),
			strings.Join(a.SubstituteIDs, ", "),
			mentor,
		})
	}
	t.Render()
}

func printReport(report *types.FairnessReport) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Fairness (gini %.3f, cv %.3f, stddev %.2f)", report.Gini, report.CV, report.StdDev)
	t.AppendHeader(table.Row{"Member", "Assignments", "Presence (days)", "Rate"})
	for _, r := range report.Rates {
		t.AppendRow(table.Row{r.MemberID, r.Assignments, r.PresenceDays, fmt.Sprintf("%.4f", r.Rate)})
	}
	t.Render()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
