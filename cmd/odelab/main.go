package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/lab"
	"github.com/san-kum/odelab/internal/problems"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

var (
	dataDir    string
	method     string
	steps      int
	xi         float64
	ti         float64
	tf         float64
	paramFlags []string
	configFile string
	preset     string
	startSteps int
	levels     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step scalar ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "solve a problem and store the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runProblem,
	}
	addSolveFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print the full run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print the trajectory as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [method1] [method2] ...",
		Short: "solve the same problem with several methods",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMethods,
	}
	addSolveFlags(compareCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge [problem]",
		Short: "measure a method's order of accuracy",
		Args:  cobra.ExactArgs(1),
		RunE:  convergeProblem,
	}
	addSolveFlags(convergeCmd)
	convergeCmd.Flags().IntVar(&startSteps, "start-steps", 100, "step count at the first level")
	convergeCmd.Flags().IntVar(&levels, "levels", 4, "number of doublings")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [problem]",
		Short: "benchmark the methods on a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  benchProblem,
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "animate a solve in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportCSVCmd,
		compareCmd, convergeCmd, presetsCmd, benchCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "rk4", "stepping method (euler, rk2, rk4)")
	cmd.Flags().IntVar(&steps, "steps", 100, "number of grid points")
	cmd.Flags().Float64Var(&xi, "xi", 1.0, "initial value")
	cmd.Flags().Float64Var(&ti, "ti", 0.0, "initial time")
	cmd.Flags().Float64Var(&tf, "tf", 10.0, "final time")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "problem parameter, name=value")
}

func parseParams(flags []string) (map[string]float64, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	params := make(map[string]float64, len(flags))
	for _, raw := range flags {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid param %q, want name=value", raw)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid param value %q: %w", raw, err)
		}
		params[name] = v
	}
	return params, nil
}

// resolveConfig merges defaults, preset, config file and flags, in
// that order of increasing precedence.
func resolveConfig(cmd *cobra.Command, problem string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Problem = problem

	if preset != "" {
		p := config.GetPreset(problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Problem = problem
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("xi") {
		cfg.Xi = xi
	}
	if cmd.Flags().Changed("ti") {
		cfg.Ti = ti
	}
	if cmd.Flags().Changed("tf") {
		cfg.Tf = tf
	}

	params, err := parseParams(paramFlags)
	if err != nil {
		return nil, err
	}
	if params != nil {
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		for name, v := range params {
			cfg.Params[name] = v
		}
	}

	return cfg, nil
}

func setupExperiment(cfg *config.Config) (*lab.Experiment, error) {
	registry := lab.NewRegistry()

	p, err := registry.GetProblem(cfg.Problem, cfg.Params)
	if err != nil {
		return nil, err
	}
	m, err := registry.GetMethod(cfg.Method)
	if err != nil {
		return nil, err
	}

	exp := lab.New(lab.Config{
		Problem: cfg.Problem,
		Method:  cfg.Method,
		Steps:   cfg.Steps,
		Xi:      cfg.Xi,
		Ti:      cfg.Ti,
		Tf:      cfg.Tf,
		Params:  cfg.Params,
	})
	if err := exp.Setup(p, m); err != nil {
		return nil, err
	}
	return exp, nil
}

func runProblem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	exp, err := setupExperiment(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("solving %s with %s...\n", cfg.Problem, cfg.Method)
	res, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Problem: cfg.Problem,
		Method:  cfg.Method,
		Steps:   cfg.Steps,
		Xi:      cfg.Xi,
		Ti:      cfg.Ti,
		Tf:      cfg.Tf,
		H:       res.H,
		FinalX:  res.FinalX,
	}, res.Times, res.Xs)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", res.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(res.Xs))
	fmt.Printf("h: %.6g\n", res.H)
	fmt.Printf("final: %.6g  min: %.6g  max: %.6g\n", res.FinalX, res.MinX, res.MaxX)

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
	fmt.Fprintln(w, "ID\tPROBLEM\tMETHOD\tTIME\tSTEPS\tH\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.6g\t%.6g\n",
			run.ID,
			run.Problem,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.H,
			run.FinalX,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, xs, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s (%s)\n", meta.Problem, meta.Method)
	fmt.Printf("samples: %d\n\n", len(xs))

	graph := asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x vs time"),
	)
	fmt.Println(graph)

	return nil
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

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, xs, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, times, xs)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, xs, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, times, xs)
}

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tFINAL\tMIN\tMAX\tTIME")

	for _, name := range args[1:] {
		methodCfg := *cfg
		methodCfg.Method = name

		exp, err := setupExperiment(&methodCfg)
		if err != nil {
			return err
		}
		res, err := exp.Run(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%.8g\t%.6g\t%.6g\t%v\n",
			name, res.FinalX, res.MinX, res.MaxX, res.Elapsed)
	}

	return w.Flush()
}

func convergeProblem(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := lab.NewRegistry()
	p, err := registry.GetProblem(cfg.Problem, cfg.Params)
	if err != nil {
		return err
	}
	m, err := registry.GetMethod(cfg.Method)
	if err != nil {
		return err
	}

	analytic, ok := p.(problems.Analytic)
	if !ok {
		return fmt.Errorf("problem %s has no closed-form solution", cfg.Problem)
	}

	study, err := analysis.Converge(analytic, m, cfg.Xi, cfg.Ti, cfg.Tf, startSteps, levels)
	if err != nil {
		return err
	}

	fmt.Printf("convergence of %s on %s\n\n", study.Method, study.Problem)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tH\tERROR\tORDER")
	for i, s := range study.Samples {
		order := "-"
		if i > 0 {
			order = fmt.Sprintf("%.2f", study.Orders[i-1])
		}
		fmt.Fprintf(w, "%d\t%.6g\t%.3e\t%s\n", s.Steps, s.H, s.Err, order)
	}

	return w.Flush()
}

func benchProblem(cmd *cobra.Command, args []string) error {
	registry := lab.NewRegistry()

	stepCounts := []int{100, 1000, 10000}

	fmt.Printf("benchmarking %s\n\n", args[0])
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSTEPS\tTIME\tSTEPS/SEC")

	for _, name := range registry.ListMethods() {
		for _, n := range stepCounts {
			exp, err := setupExperiment(&config.Config{
				Problem: args[0],
				Method:  name,
				Steps:   n,
				Xi:      1.0,
				Ti:      0.0,
				Tf:      10.0,
			})
			if err != nil {
				return err
			}

			res, err := exp.Run(context.Background())
			if err != nil {
				return err
			}

			stepsPerSec := float64(n) / res.Elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n", name, n, res.Elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	registry := lab.NewRegistry()
	p, err := registry.GetProblem(cfg.Problem, cfg.Params)
	if err != nil {
		return err
	}
	m, err := registry.GetMethod(cfg.Method)
	if err != nil {
		return err
	}

	return viz.RunLive(cfg.Problem, p.Eval, m, cfg.Steps, cfg.Xi, cfg.Ti, cfg.Tf)
}
