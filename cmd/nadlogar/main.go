// Command nadlogar generates randomized algebra exercises.
//
// Usage:
//
//	nadlogar kinds
//	nadlogar generate double-root --seed 7 --count 3 --format yaml
//	nadlogar generate vertex --seed 1 --preview
//	nadlogar serve --addr :8080
//	nadlogar config init nadlogar.yaml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/njchilds90/nadlogar/generator"
	"github.com/njchilds90/nadlogar/internal/config"
	"github.com/njchilds90/nadlogar/internal/logging"
	"github.com/njchilds90/nadlogar/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nadlogar",
		Short: "Randomized algebra exercise generator",
		Long: `nadlogar draws random rational coefficients, derives roots, vertices,
poles and asymptotes exactly, and prints exercise fields ready for
@name template substitution.

Every instance is reproducible from its kind and seed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			logger, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "nadlogar.yaml", "path to the YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging, including rejected attempts")

	root.AddCommand(a.kindsCmd(), a.generateCmd(), a.serveCmd(), a.configCmd())
	return root
}

func (a *app) generator() (*generator.Generator, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	return generator.New(append(opts, generator.WithLogger(a.logger))...), nil
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the problem kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			for _, p := range gen.Registry().Problems() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", p.Kind(), p.Title())
			}
			return nil
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	var (
		seed    int64
		count   int
		format  string
		preview bool
	)
	cmd := &cobra.Command{
		Use:   "generate [kind]",
		Short: "Generate exercise instances",
		Long: `Generates count instances of kind from seeds seed, seed+1, ...
and prints them as JSON or YAML. With --preview the instruction and
solution templates are printed with every placeholder filled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			instances, err := gen.Batch(cmd.Context(), args[0], seed, count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if preview {
				return writePreview(out, instances)
			}
			return writeInstances(out, format, instances)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first instance")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of instances")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&preview, "preview", false, "print filled templates instead of fields")
	return cmd
}

func writeInstances(w io.Writer, format string, instances []*generator.Instance) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(instances)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(instances); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (valid: json, yaml)", format)
}

func writePreview(w io.Writer, instances []*generator.Instance) error {
	for i, inst := range instances {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if missing := inst.Missing(); len(missing) > 0 {
			return fmt.Errorf("%s seed %d: no value for %v", inst.Kind(), inst.Seed(), missing)
		}
		instruction, solution := inst.Preview()
		fmt.Fprintf(w, "# %s (seed %d)\n%s\n%s\n", inst.Kind(), inst.Seed(), instruction, solution)
	}
	return nil
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(gen, a.logger, a.cfg.Server.MaxBatch)
			return srv.ListenAndServe(cmd.Context(), addr, a.cfg.GetReadTimeout(), a.cfg.GetWriteTimeout())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}, &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	})
	return cmd
}
