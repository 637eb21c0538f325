package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/logger"
	"github.com/huynhanx03/go-vector/pkg/settings"
	"github.com/huynhanx03/go-vector/pkg/trace"
)

var version = "dev"

type runOptions struct {
	configPath string
	count      int
	kind       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vectrace",
		Short:         "Replay growth workloads against vectors and report reallocations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured workloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config (defaults are used when empty)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "override the element count of every workload")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "only run workloads of this kind")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	return cmd
}

func loadConfig(opts *runOptions) (settings.Config, error) {
	cfg := settings.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = settings.Load(opts.configPath); err != nil {
			return settings.Config{}, err
		}
	}

	if opts.logLevel != "" {
		cfg.Logger.LogLevel = opts.logLevel
	}
	if opts.kind != "" {
		var kept []settings.Workload
		for _, w := range cfg.Trace.Workloads {
			if w.Kind == opts.kind {
				kept = append(kept, w)
			}
		}
		cfg.Trace.Workloads = kept
	}
	if opts.count > 0 {
		for i := range cfg.Trace.Workloads {
			cfg.Trace.Workloads[i].Count = opts.count
		}
	}
	if err := settings.Validate(cfg); err != nil {
		return settings.Config{}, err
	}
	return cfg, nil
}

func runTrace(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting trace", zap.Int("workloads", len(cfg.Trace.Workloads)))
	results, err := trace.Run(cmd.Context(), log, cfg.Trace.Workloads)
	if err != nil {
		log.Error("trace failed", zap.Error(err))
		return err
	}

	renderResults(cmd.OutOrStdout(), results)
	return nil
}

func renderResults(w io.Writer, results []trace.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Workload", "Kind", "Ops", "Size", "Capacity", "Ref cap", "Reallocs", "Pow2 caps", "Utilization"})
	for _, r := range results {
		table.Append([]string{
			r.Name,
			r.Kind,
			strconv.Itoa(r.Ops),
			strconv.Itoa(r.Stats.Size),
			strconv.Itoa(r.Stats.Capacity),
			strconv.Itoa(r.RefCapacity),
			strconv.Itoa(r.Stats.Reallocations),
			fmt.Sprintf("%d/%d", r.PowerOfTwoCaps, len(r.Capacities)),
			fmt.Sprintf("%.1f%%", r.Stats.Utilization*100),
		})
	}
	table.Render()
}
