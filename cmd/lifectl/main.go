package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"squarevolution/internal/app"
	_ "squarevolution/internal/patterns"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lifectl",
		Short:        "Headless tools for the squarevolution Game of Life sandbox",
		SilenceUsage: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(sweepCmd())
	root.AddCommand(patternsCmd())
	return root
}

func runCmd() *cobra.Command {
	cfg := app.NewConfig()
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seed a pattern, advance it and report the final state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := resolve(cmd, cfg); err != nil {
				return err
			}
			return runRun(cmd.OutOrStdout(), cfg, opts)
		},
	}

	bindConfig(cmd, cfg)
	cmd.Flags().Uint64VarP(&opts.generations, "generations", "n", 100, "generations to advance")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the live cells inside the bounding box")
	cmd.Flags().IntVar(&opts.maxShow, "max-show", 80, "largest bounding box edge printed by --show")
	return cmd
}

func sweepCmd() *cobra.Command {
	cfg := app.NewConfig()
	var opts sweepOptions

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the pattern under many seeds in parallel and rank the outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := resolve(cmd, cfg); err != nil {
				return err
			}
			return runSweep(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	bindConfig(cmd, cfg)
	cmd.Flags().Uint64VarP(&opts.generations, "generations", "n", 500, "generations to advance each seed")
	cmd.Flags().IntVar(&opts.count, "count", 32, "number of consecutive seeds starting at --seed")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines (0 uses every CPU)")
	cmd.Flags().IntVar(&opts.top, "top", 5, "rows printed in the ranking")
	return cmd
}

func patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the registered seed patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printPatterns(cmd.OutOrStdout())
			return nil
		},
	}
}

// bindConfig exposes the sandbox flags on a subcommand.
func bindConfig(cmd *cobra.Command, cfg *app.Config) {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cfg.Bind(fs)
	cmd.Flags().AddGoFlagSet(fs)
}

// resolve layers the --config file under the flags given on the command line.
func resolve(cmd *cobra.Command, cfg *app.Config) error {
	explicit := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) { explicit[f.Name] = f.Value.String() })
	return cfg.ResolveWith(explicit, cmd.Flags().Set)
}
