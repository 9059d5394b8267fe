// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/fleetgraph/logisim/sim"
)

var (
	configPath     string
	graphSource    string
	tsplibPath     string
	numTrucks      int
	numOrders      int
	kNeighbors     int
	horizonMinutes float64
	seed           int64
	dispatchPolicy string
	logLevel       string
	reportCSVPath  string
)

var rootCmd = &cobra.Command{
	Use:   "logisim",
	Short: "Discrete-event simulator for a fleet logistics network",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a logistics fleet simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := DefaultRunConfig()
		if configPath != "" {
			loaded, err := loadRunConfig(configPath)
			if err != nil {
				logrus.Fatalf("failed to load config %s: %v", configPath, err)
			}
			cfg = loaded
		}

		// Explicit flags override the config file (R18: never let a
		// config default silently clobber a value the user typed).
		if cmd.Flags().Changed("graph") {
			cfg.GraphSource = graphSource
		}
		if cmd.Flags().Changed("tsplib") {
			cfg.TSPLIBPath = tsplibPath
		}
		if cmd.Flags().Changed("num-trucks") {
			cfg.NumTrucks = numTrucks
		}
		if cmd.Flags().Changed("num-orders") {
			cfg.NumOrders = numOrders
		}
		if cmd.Flags().Changed("k-neighbors") {
			cfg.KNeighbors = kNeighbors
		}
		if cmd.Flags().Changed("horizon") {
			cfg.HorizonMinutes = horizonMinutes
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if cmd.Flags().Changed("dispatch-policy") {
			cfg.DispatchPolicy = dispatchPolicy
		}
		if cmd.Flags().Changed("log") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("report-csv") {
			cfg.ReportCSVPath = reportCSVPath
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		graph, err := buildGraph(cfg)
		if err != nil {
			logrus.Fatalf("failed to build graph: %v", err)
		}

		engine := sim.NewEngine(sim.EngineConfig{
			Graph:                graph,
			Horizon:              cfg.HorizonMinutes,
			Seed:                 cfg.Seed,
			DispatchPolicy:       cfg.DispatchPolicy,
			RestThresholdMinutes: cfg.RestThresholdMinutes,
			RestDurationMinutes:  cfg.RestDurationMinutes,
		})
		engine.SeedTrucks(cfg.NumTrucks)
		engine.SeedOrders(cfg.NumOrders)

		logrus.Infof("starting run: %d nodes, %d trucks, %d orders, horizon=%.0f min, policy=%s",
			len(graph.NodeIDs()), cfg.NumTrucks, cfg.NumOrders, cfg.HorizonMinutes, cfg.DispatchPolicy)

		engine.Run()
		engine.Metrics.Print()

		if cfg.ReportCSVPath != "" {
			path, err := sim.WriteCSVReport(cfg.ReportCSVPath, engine)
			if err != nil {
				logrus.Errorf("failed to write CSV report: %v", err)
			} else {
				logrus.Infof("wrote report to %s", path)
			}
		}
		logrus.Info("run complete")
	},
}

// buildGraph constructs the transport graph named by cfg.GraphSource.
func buildGraph(cfg RunConfig) (*sim.Graph, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)).ForSubsystem(sim.SubsystemDispatch)
	switch cfg.GraphSource {
	case "", "random":
		gcfg := sim.DefaultRandomGraphConfig()
		if cfg.NumNodes > 0 {
			gcfg.NumNodes = cfg.NumNodes
		}
		if cfg.KNeighbors > 0 {
			gcfg.KNeighbors = cfg.KNeighbors
		}
		return sim.BuildRandomGraph(gcfg, rng)
	case "tsplib":
		gcfg := sim.DefaultTSPLIBGraphConfig(cfg.TSPLIBPath)
		if cfg.KNeighbors > 0 {
			gcfg.KNeighbors = cfg.KNeighbors
		}
		return sim.BuildTSPLIBGraph(gcfg, rng)
	default:
		logrus.Fatalf("unknown graph source %q (want \"random\" or \"tsplib\")", cfg.GraphSource)
		return nil, nil
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config file")
	runCmd.Flags().StringVar(&graphSource, "graph", "random", "Graph source: random or tsplib")
	runCmd.Flags().StringVar(&tsplibPath, "tsplib", "", "Path to a TSPLIB coordinate file (required for --graph=tsplib)")
	runCmd.Flags().IntVar(&numTrucks, "num-trucks", 5, "Number of trucks to spawn")
	runCmd.Flags().IntVar(&numOrders, "num-orders", 20, "Number of orders to generate")
	runCmd.Flags().IntVar(&kNeighbors, "k-neighbors", 0, "Neighbours per node in graph construction (0 keeps the source's default)")
	runCmd.Flags().Float64Var(&horizonMinutes, "horizon", 1440, "Simulation horizon in minutes")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	runCmd.Flags().StringVar(&dispatchPolicy, "dispatch-policy", "first-idle", "Dispatch policy: first-idle or nearest-idle")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&reportCSVPath, "report-csv", "", "Path to write a CSV summary report")

	rootCmd.AddCommand(runCmd)
}
