package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/taylab/internal/analysis"
	"github.com/san-kum/taylab/internal/catalog"
	"github.com/san-kum/taylab/internal/config"
	"github.com/san-kum/taylab/internal/expand"
	"github.com/san-kum/taylab/internal/metrics"
	"github.com/san-kum/taylab/internal/storage"
	"github.com/san-kum/taylab/internal/sweep"
	"github.com/san-kum/taylab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	xVal       float64
	policy     string
	precision  float64
	maxIter    int
	order      int
	nu         int
	deriveN    int
	from       float64
	to         float64
	points     int
	workers    int
	outFile    string
	jsonOut    string
	csvOut     string
	configFile string
	preset     string
	termCount  int
)

// main is the entry point for the taylab CLI; it registers commands and flags, launches the interactive explorer when no subcommand is provided, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "taylab",
		Short: "power series evaluation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return viz.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [series]",
		Short: "evaluate a series at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  evalSeries,
	}
	evalCmd.Flags().Float64Var(&xVal, "x", config.DefaultX, "evaluation point")
	evalCmd.Flags().StringVar(&policy, "policy", "convergence", "truncation policy (fixed|convergence|guaranteed)")
	evalCmd.Flags().Float64Var(&precision, "precision", config.DefaultPrecision, "target precision")
	evalCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration cap")
	evalCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "truncation order (fixed policy)")
	evalCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")
	evalCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	evalCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	diffCmd := &cobra.Command{
		Use:   "diff [series]",
		Short: "differentiate a series term-wise, then evaluate",
		Args:  cobra.ExactArgs(1),
		RunE:  diffSeries,
	}
	diffCmd.Flags().IntVar(&deriveN, "derive", 1, "derivative order")
	diffCmd.Flags().Float64Var(&xVal, "x", config.DefaultX, "evaluation point")
	diffCmd.Flags().StringVar(&policy, "policy", "convergence", "truncation policy (fixed|convergence|guaranteed)")
	diffCmd.Flags().Float64Var(&precision, "precision", config.DefaultPrecision, "target precision")
	diffCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration cap")
	diffCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "truncation order (fixed policy)")
	diffCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")
	diffCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	diffCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep [series]",
		Short: "evaluate across an interval and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSeries,
	}
	sweepCmd.Flags().Float64Var(&from, "from", config.DefaultFrom, "interval start")
	sweepCmd.Flags().Float64Var(&to, "to", config.DefaultTo, "interval end")
	sweepCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of points")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all CPUs)")
	sweepCmd.Flags().StringVar(&policy, "policy", "convergence", "truncation policy (fixed|convergence|guaranteed)")
	sweepCmd.Flags().Float64Var(&precision, "precision", config.DefaultPrecision, "target precision")
	sweepCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration cap")
	sweepCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "truncation order (fixed policy)")
	sweepCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().StringVar(&jsonOut, "json-out", "", "also write the full result as JSON")
	sweepCmd.Flags().StringVar(&csvOut, "csv-out", "", "also write the full result as CSV")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "list catalog series",
		RunE:  listSeries,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [series]",
		Short: "list available presets for a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for series: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&outFile, "out", "", "write a PNG/SVG/PDF file instead of a terminal chart")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [series]",
		Short: "convergence diagnostics at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSeries,
	}
	analyzeCmd.Flags().Float64Var(&xVal, "x", config.DefaultX, "evaluation point")
	analyzeCmd.Flags().IntVar(&termCount, "terms", 40, "number of partial sums to inspect")
	analyzeCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare [series] [policy1] [policy2] ...",
		Short: "compare truncation policies on the same point",
		Args:  cobra.MinimumNArgs(2),
		RunE:  comparePolicies,
	}
	compareCmd.Flags().Float64Var(&xVal, "x", config.DefaultX, "evaluation point")
	compareCmd.Flags().Float64Var(&precision, "precision", config.DefaultPrecision, "target precision")
	compareCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration cap")
	compareCmd.Flags().IntVar(&order, "order", config.DefaultOrder, "truncation order (fixed policy)")
	compareCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")

	benchCmd := &cobra.Command{
		Use:   "bench [series]",
		Short: "benchmark truncation policies",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSeries,
	}
	benchCmd.Flags().Float64Var(&xVal, "x", config.DefaultX, "evaluation point")
	benchCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")

	liveCmd := &cobra.Command{
		Use:   "live [series]",
		Short: "watch a series converge term by term",
		Args:  cobra.ExactArgs(1),
		RunE:  liveSeries,
	}
	liveCmd.Flags().Float64Var(&xVal, "x", config.DefaultX, "evaluation point")
	liveCmd.Flags().Float64Var(&precision, "precision", config.DefaultPrecision, "target precision")
	liveCmd.Flags().IntVar(&nu, "nu", 0, "bessel order (besselj)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	rootCmd.AddCommand(evalCmd, diffCmd, sweepCmd, listCmd, seriesCmd, presetsCmd, plotCmd, analyzeCmd, compareCmd, benchCmd, liveCmd, exportCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// lookupEntry resolves a catalog name; "besselj" picks up the --nu flag.
func lookupEntry(name string) (catalog.Entry, error) {
	if name == "besselj" {
		return catalog.Bessel(nu), nil
	}
	return catalog.Lookup(name)
}

// applyConfig layers configuration under the CLI flags: preset values
// first, then config file values for any flag not set explicitly.
func applyConfig(cmd *cobra.Command, series string) error {
	if preset != "" {
		cfg := config.GetPreset(series, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(series))
		}
		policy = cfg.Policy
		xVal = cfg.X
		precision = cfg.Precision
		maxIter = cfg.MaxIter
		order = cfg.Order
		nu = cfg.Nu
		if cfg.Sweep.Points > 0 {
			from = cfg.Sweep.From
			to = cfg.Sweep.To
			points = cfg.Sweep.Points
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("policy") {
			policy = cfg.Policy
		}
		if !cmd.Flags().Changed("x") {
			xVal = cfg.X
		}
		if !cmd.Flags().Changed("precision") {
			precision = cfg.Precision
		}
		if !cmd.Flags().Changed("max-iter") {
			maxIter = cfg.MaxIter
		}
		if !cmd.Flags().Changed("order") {
			order = cfg.Order
		}
		if !cmd.Flags().Changed("nu") {
			nu = cfg.Nu
		}
		if !cmd.Flags().Changed("derive") {
			deriveN = cfg.Derive
		}
		if !cmd.Flags().Changed("from") {
			from = cfg.Sweep.From
		}
		if !cmd.Flags().Changed("to") {
			to = cfg.Sweep.To
		}
		if !cmd.Flags().Changed("points") {
			points = cfg.Sweep.Points
		}
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Sweep.Workers
		}
	}

	return nil
}

// currentConfig snapshots the flag values into a config for evaluator
// construction.
func currentConfig(series string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Series = series
	cfg.Policy = policy
	cfg.X = xVal
	cfg.Precision = precision
	cfg.MaxIter = maxIter
	cfg.Order = order
	cfg.Nu = nu
	cfg.Derive = deriveN
	cfg.Sweep.From = from
	cfg.Sweep.To = to
	cfg.Sweep.Points = points
	cfg.Sweep.Workers = workers
	cfg.DataDir = dataDir
	return cfg
}

func evalSeries(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd, args[0]); err != nil {
		return err
	}

	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}

	ev, err := currentConfig(entry.Name).Evaluator(entry.Bound)
	if err != nil {
		return err
	}

	fmt.Printf("evaluating %s at x=%g (%s policy)\n", entry.Name, xVal, policy)

	start := time.Now()
	res := ev.Evaluate(entry.Series, xVal)
	elapsed := time.Since(start)

	fmt.Printf("\nvalue: %.15g\n", res.Value)
	fmt.Printf("terms: %d\n", res.Terms)
	if res.ReachedPrecision > 0 {
		fmt.Printf("reached precision: %.3e\n", res.ReachedPrecision)
	}
	fmt.Printf("flags: %s\n", res.Flags)

	if entry.Reference != nil {
		ref := entry.Reference(xVal)
		fmt.Printf("reference: %.15g (abs error %.3e)\n", ref, math.Abs(res.Value-ref))
	}

	fmt.Printf("elapsed: %v\n", elapsed)

	return nil
}

func diffSeries(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd, args[0]); err != nil {
		return err
	}

	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}

	s := entry.Series.Differentiate(deriveN)

	ev, err := currentConfig(entry.Name).Evaluator(entry.Bound)
	if err != nil {
		return err
	}

	fmt.Printf("evaluating derivative %d of %s at x=%g (%s policy)\n", deriveN, entry.Name, xVal, policy)

	res := ev.Evaluate(s, xVal)

	fmt.Printf("\nvalue: %.15g\n", res.Value)
	fmt.Printf("terms: %d\n", res.Terms)
	if res.ReachedPrecision > 0 {
		fmt.Printf("reached precision: %.3e\n", res.ReachedPrecision)
	}
	fmt.Printf("flags: %s\n", res.Flags)

	return nil
}

func sweepSeries(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd, args[0]); err != nil {
		return err
	}

	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}

	ev, err := currentConfig(entry.Name).Evaluator(entry.Bound)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sw := sweep.New(entry.Series, ev)
	sw.AddMetric(metrics.NewCleanRate())
	sw.AddMetric(metrics.NewTermMean())
	sw.AddMetric(metrics.NewMaxAbs())
	sw.AddMetric(metrics.NewFlagCount(expand.DivergenceSuspected))
	sw.AddMetric(metrics.NewFlagCount(expand.MaxIterationsReached))

	fmt.Printf("sweeping %s over [%g, %g], %d points (%s policy)...\n", entry.Name, from, to, points, policy)
	start := time.Now()

	result, err := sw.Run(context.Background(), sweep.Config{From: from, To: to, Points: points, Workers: workers})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(entry.Name, policy, precision, order, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("clean points: %d/%d\n", result.Clean(), len(result.Xs))
	fmt.Println("\nstats:")
	for name, val := range result.Stats {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if jsonOut != "" {
		if err := storage.ExportJSON(jsonOut, entry.Name, policy, precision, order, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}

	if csvOut != "" {
		if err := storage.ExportCSV(csvOut, result); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvOut)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERIES\tPOLICY\tTIME\tRANGE\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t[%g, %g]\t%d\n",
			run.ID,
			run.Series,
			run.Policy,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.From,
			run.To,
			run.Points,
		)
	}

	return w.Flush()
}

func listSeries(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tRADIUS\tBOUND\tREFERENCE")

	for _, name := range catalog.Names() {
		entry, err := catalog.Lookup(name)
		if err != nil {
			continue
		}

		radius := "inf"
		if !math.IsInf(entry.Radius, 1) {
			radius = strconv.FormatFloat(entry.Radius, 'g', -1, 64)
		}
		bound := "-"
		if entry.Bound != nil {
			bound = "yes"
		}
		ref := "-"
		if entry.Reference != nil {
			ref = "yes"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", entry.Name, entry.Describe, radius, bound, ref)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	xs, values, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(xs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("series: %s (%s policy)\n", meta.Series, meta.Policy)
	fmt.Printf("samples: %d\n\n", len(xs))

	if outFile != "" {
		result := &sweep.Result{Xs: xs, Values: values}
		var ref func(float64) float64
		if entry, err := catalog.Lookup(meta.Series); err == nil {
			ref = entry.Reference
		}
		if err := viz.RenderFile(outFile, meta.Series, result, ref); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	caption := fmt.Sprintf("%s over [%g, %g]", meta.Series, meta.From, meta.To)
	fmt.Println(viz.SweepChart(values, 80, 10, caption))

	return nil
}

func analyzeSeries(cmd *cobra.Command, args []string) error {
	if err := applyConfig(cmd, args[0]); err != nil {
		return err
	}

	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}

	partials := analysis.Partials(entry.Series, xVal, termCount)
	if len(partials) == 0 {
		return fmt.Errorf("no terms accumulated at x=%g", xVal)
	}
	deltas := analysis.Deltas(partials)

	fmt.Printf("convergence analysis: %s at x=%g, %d terms\n\n", entry.Name, xVal, len(partials))
	fmt.Println(viz.DeltaChart(deltas, 80, 12, "log10 |delta| per term"))
	fmt.Println()

	rate := analysis.Rate(deltas)
	switch {
	case rate == 0:
		fmt.Printf("tail delta ratio: %.4f (degenerate tail)\n", rate)
	case rate < 1:
		fmt.Printf("tail delta ratio: %.4f (contracting at this x)\n", rate)
	default:
		fmt.Printf("tail delta ratio: %.4f (growing at this x)\n", rate)
	}

	accel := analysis.Aitken(partials)
	if len(accel) > 0 {
		last := partials[len(partials)-1]
		boosted := accel[len(accel)-1]
		fmt.Printf("\nlast partial sum:   %.12g\n", last)
		fmt.Printf("aitken accelerated: %.12g\n", boosted)
		if entry.Reference != nil {
			ref := entry.Reference(xVal)
			fmt.Printf("reference:          %.12g\n", ref)
			fmt.Printf("abs error raw/accelerated: %.3e / %.3e\n", math.Abs(last-ref), math.Abs(boosted-ref))
		}
	}

	return nil
}

func comparePolicies(cmd *cobra.Command, args []string) error {
	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}
	policies := args[1:]

	fmt.Printf("comparing policies for %s at x=%g (precision=%.0e, order=%d)\n\n", entry.Name, xVal, precision, order)
	fmt.Printf("%-14s  %-20s  %-6s  %-10s  %s\n", "policy", "value", "terms", "reached", "flags")
	fmt.Println(strings.Repeat("-", 68))

	for _, polName := range policies {
		cfg := currentConfig(entry.Name)
		cfg.Policy = polName

		ev, err := cfg.Evaluator(entry.Bound)
		if err != nil {
			fmt.Printf("%-14s  error: %v\n", polName, err)
			continue
		}

		res := ev.Evaluate(entry.Series, xVal)
		fmt.Printf("%-14s  %-20.12g  %-6d  %-10.2e  %s\n", polName, res.Value, res.Terms, res.ReachedPrecision, res.Flags)
	}

	if entry.Reference != nil {
		fmt.Printf("\nreference: %.12g\n", entry.Reference(xVal))
	}

	return nil
}

func benchSeries(cmd *cobra.Command, args []string) error {
	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}

	const rounds = 10000

	fmt.Printf("benchmarking %s at x=%g (%d evaluations per row)\n\n", entry.Name, xVal, rounds)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POLICY\tTARGET\tTERMS\tTIME/EVAL\tEVALS/SEC")

	precisions := []float64{1e-6, 1e-9, 1e-12}
	for _, prec := range precisions {
		ev := expand.NewConvergence[float64](prec)
		res := ev.Evaluate(entry.Series, xVal)

		start := time.Now()
		for i := 0; i < rounds; i++ {
			ev.Evaluate(entry.Series, xVal)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "convergence\t%.0e\t%d\t%v\t%.0f\n",
			prec, res.Terms, elapsed/rounds, float64(rounds)/elapsed.Seconds())
	}

	orders := []int{8, 16, 32}
	for _, n := range orders {
		ev := expand.NewFixedOrder[float64](n)
		res := ev.Evaluate(entry.Series, xVal)

		start := time.Now()
		for i := 0; i < rounds; i++ {
			ev.Evaluate(entry.Series, xVal)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "fixed\torder %d\t%d\t%v\t%.0f\n",
			n, res.Terms, elapsed/rounds, float64(rounds)/elapsed.Seconds())
	}

	if entry.Bound != nil {
		for _, prec := range precisions {
			ev := expand.NewGuaranteed(prec, entry.Bound)
			res := ev.Evaluate(entry.Series, xVal)

			start := time.Now()
			for i := 0; i < rounds; i++ {
				ev.Evaluate(entry.Series, xVal)
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "guaranteed\t%.0e\t%d\t%v\t%.0f\n",
				prec, res.Terms, elapsed/rounds, float64(rounds)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func liveSeries(cmd *cobra.Command, args []string) error {
	entry, err := lookupEntry(args[0])
	if err != nil {
		return err
	}
	return viz.RunExplorer(entry, xVal, precision)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	xs, values, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	if len(xs) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "value"}); err != nil {
		return err
	}

	for i := range xs {
		row := []string{
			strconv.FormatFloat(xs[i], 'g', -1, 64),
			strconv.FormatFloat(values[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	xs, values, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	result := &sweep.Result{Xs: xs, Values: values, Stats: meta.Stats}
	return storage.ExportJSONStdout(meta.Series, meta.Policy, meta.Precision, meta.Order, result)
}
