package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/kyeongh0324/two-body-problem/internal/config"
	"github.com/kyeongh0324/two-body-problem/internal/metrics"
	"github.com/kyeongh0324/two-body-problem/internal/orbit"
	"github.com/kyeongh0324/two-body-problem/internal/trace"
	"github.com/kyeongh0324/two-body-problem/internal/viz"
)

var (
	configFile string
	preset     string

	gravity       float64
	primaryMass   float64
	secondaryMass float64
	primaryRadius float64
	secondRadius  float64
	separation    float64
	dt            float64
	trailCap      int
	duration      float64
	frameRate     int

	kickAt    float64
	kickAngle float64
	kickPower float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "twobody",
		Short: "interactive two-body gravitational simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no subcommand is given.
			return runLive(cmd, args)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless simulation with metrics and plots",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&kickAt, "kick-at", 0, "apply a kick at this sim time (0 = never)")
	runCmd.Flags().Float64Var(&kickAngle, "kick-angle", 0, "kick direction in degrees")
	runCmd.Flags().Float64Var(&kickPower, "kick-power", config.DefaultKickMagnitude, "kick magnitude")

	exportCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run headless and write the trajectory as CSV to stdout",
		RunE:  runExportCSV,
	}
	exportCmd.Flags().Float64Var(&kickAt, "kick-at", 0, "apply a kick at this sim time (0 = never)")
	exportCmd.Flags().Float64Var(&kickAngle, "kick-angle", 0, "kick direction in degrees")
	exportCmd.Flags().Float64Var(&kickPower, "kick-power", config.DefaultKickMagnitude, "kick magnitude")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	for _, c := range []*cobra.Command{rootCmd, liveCmd, runCmd, exportCmd} {
		f := c.Flags()
		f.StringVar(&configFile, "config", "", "config file path (yaml)")
		f.StringVar(&preset, "preset", "", "named preset configuration")
		f.Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
		f.Float64Var(&primaryMass, "m1", config.DefaultPrimaryMass, "primary mass")
		f.Float64Var(&secondaryMass, "m2", config.DefaultSecondaryMass, "secondary mass")
		f.Float64Var(&primaryRadius, "r1", config.DefaultPrimaryRadius, "primary radius")
		f.Float64Var(&secondRadius, "r2", config.DefaultSecondaryRadius, "secondary radius")
		f.Float64Var(&separation, "separation", config.DefaultSeparation, "initial separation")
		f.Float64Var(&dt, "dt", config.DefaultDt, "timestep")
		f.IntVar(&trailCap, "trail", config.DefaultTrailCapacity, "trail capacity")
		f.Float64Var(&duration, "time", config.DefaultDuration, "duration (headless)")
		f.IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate (live)")
	}

	rootCmd.AddCommand(liveCmd, runCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, and flags, in increasing
// precedence: explicit flags always win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("g") {
		cfg.G = gravity
	}
	if flags.Changed("m1") {
		cfg.PrimaryMass = primaryMass
	}
	if flags.Changed("m2") {
		cfg.SecondaryMass = secondaryMass
	}
	if flags.Changed("r1") {
		cfg.PrimaryRadius = primaryRadius
	}
	if flags.Changed("r2") {
		cfg.SecondaryRadius = secondRadius
	}
	if flags.Changed("separation") {
		cfg.Separation = separation
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("trail") {
		cfg.TrailCapacity = trailCap
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}

	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// simulate runs a headless session for the configured duration,
// feeding every step into the recorder and metrics. An optional
// scheduled kick exercises the impulse path without a UI.
func simulate(cfg *config.Config) (*orbit.Session, *trace.Recorder, []metrics.Metric, error) {
	session, err := orbit.NewSession(cfg.Orbit())
	if err != nil {
		return nil, nil, nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	rec := trace.NewRecorder(steps + 1)
	ms := metrics.Defaults()

	rec.Record(session.Sample())
	for _, m := range ms {
		m.Observe(session.Sample())
	}

	kicked := kickAt <= 0
	for i := 0; i < steps; i++ {
		if !kicked && session.Time() >= kickAt {
			if err := session.ApplyKick(kickAngle, kickPower); err != nil {
				return nil, nil, nil, err
			}
			kicked = true
		}

		out := session.Step()
		if out.Halted {
			break
		}

		sample := session.Sample()
		rec.Record(sample)
		for _, m := range ms {
			m.Observe(sample)
		}
	}

	return session, rec, ms, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	session, rec, ms, err := simulate(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("simulated %.2fs of orbit (dt=%.4f, %d samples)\n", session.Time(), cfg.Dt, rec.Len())
	if session.Halted() {
		fmt.Println("halted: bodies collided")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.6f\n", m.Name(), m.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	plots := []struct {
		caption string
		pick    func(orbit.Sample) float64
	}{
		{"separation", func(s orbit.Sample) float64 { return s.Separation }},
		{"speed", func(s orbit.Sample) float64 { return s.Velocity.Mag() }},
		{"energy", func(s orbit.Sample) float64 { return s.Energy }},
	}
	for _, p := range plots {
		data := rec.Series(p.pick)
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	_, rec, _, err := simulate(cfg)
	if err != nil {
		return err
	}

	return rec.WriteCSV(os.Stdout)
}
