package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/atomica/internal/config"
	"github.com/san-kum/atomica/internal/engine"
	"github.com/san-kum/atomica/internal/logging"
	"github.com/san-kum/atomica/internal/metrics"
	"github.com/san-kum/atomica/internal/scene"
	"github.com/san-kum/atomica/internal/storage"
	"github.com/san-kum/atomica/internal/stream"
	"github.com/san-kum/atomica/internal/viz"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	dt         float64
	steps      int
	workers    int
	seed       int64
	addr       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomica",
		Short: "interactive atomic physics and chemistry sandbox",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atomica", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error; overrides the config file)")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scene and store its trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	addSceneFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scene with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	serveCmd := &cobra.Command{
		Use:   "serve [preset]",
		Short: "run a scene and stream snapshots over websocket",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	addSceneFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's kinetic energy",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, listCmd, plotCmd, exportCmd, presetsCmd)
	rootCmd.AddCommand(fissionCmd(), fusionCmd(), jumpCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scene config file (yaml)")
	cmd.Flags().Float64Var(&dt, "dt", 0, "timestep in seconds (overrides config)")
	cmd.Flags().IntVar(&steps, "steps", 0, "tick count (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "force solver workers (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed recorded with the run")
}

// resolveConfig builds the effective scene config from preset, file and
// flag overrides, in that order.
func resolveConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) == 1 {
		preset := config.GetPreset(args[0])
		if preset == nil {
			return nil, fmt.Errorf("unknown preset %q (see `atomica presets`)", args[0])
		}
		cfg = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if dt > 0 {
		cfg.Dt = dt
	}
	if steps > 0 {
		cfg.Steps = steps
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	cfg.Seed = seed
	return cfg, nil
}

// effectiveLogLevel resolves the log level: the flag wins, then the config
// file, then the parser's default.
func effectiveLogLevel(cfg *config.Config) string {
	if logLevel != "" {
		return logLevel
	}
	return cfg.LogLevel
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	log := logging.New(effectiveLogLevel(cfg))

	recorder := metrics.NewRecorder(
		metrics.NewKineticEnergy(),
		metrics.NewMomentum(),
		metrics.NewMaxSpeed(),
	)

	eng, err := scene.Build(cfg, log, engine.WithObserver(recorder))
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < cfg.Steps; i++ {
		if err := eng.Tick(cfg.Dt); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Scene, cfg.Dt, cfg.Seed, recorder.Snapshots(), recorder.Values())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "scene\t%s\n", cfg.Scene)
	fmt.Fprintf(w, "steps\t%d\n", cfg.Steps)
	fmt.Fprintf(w, "dt\t%e s\n", cfg.Dt)
	fmt.Fprintf(w, "wall time\t%s\n", elapsed)
	for name, value := range recorder.Values() {
		fmt.Fprintf(w, "%s\t%e\n", name, value)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}

	eng, err := scene.Build(cfg, logging.Nop{})
	if err != nil {
		return err
	}
	return viz.Run(eng, cfg.Dt, cfg.Scene)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	log := logging.New(effectiveLogLevel(cfg))

	broadcaster := stream.NewBroadcaster(log)
	defer broadcaster.Close()

	eng, err := scene.Build(cfg, log, engine.WithObserver(broadcaster))
	if err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(time.Second / 30)
		defer ticker.Stop()
		for range ticker.C {
			for i := 0; i < 50; i++ {
				if err := eng.Tick(cfg.Dt); err != nil {
					log.Errorf("tick failed: %v", err)
					return
				}
			}
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/ws", broadcaster)

	log.Infof("streaming scene %q on ws://%s/ws", cfg.Scene, addr)
	return http.ListenAndServe(addr, mux)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tSTEPS\tPARTICLES\tDT\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%e\t%s\n",
			run.ID, run.Scene, run.Steps, run.Particles, run.Dt,
			run.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	_, energies, _, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(energies) == 0 {
		return fmt.Errorf("run %s has no trajectory", args[0])
	}

	graph := asciigraph.Plot(energies,
		asciigraph.Height(12), asciigraph.Width(72),
		asciigraph.Caption("kinetic energy (J) over ticks"))
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)

	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	times, energies, rows, err := store.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta       *storage.RunMetadata `json:"meta"`
		Times      []float64            `json:"times"`
		Energies   []float64            `json:"kinetic_energies"`
		Trajectory [][]float64          `json:"trajectory"`
	}{meta, times, energies, rows}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
