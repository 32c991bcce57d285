// Package cli provides the Cobra-based CLI for the creational pattern demos.
package cli

import (
	"bufio"
	"context"
	"creational/demo"
	"creational/house"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "creational",
		Short:         "Demonstrations of creational design patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg := v.GetString("config"); cfg != "" {
				v.SetConfigFile(cfg)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", cfg, err)
				}
			}

			// logs go to stderr so demo output on stdout stays exact
			slog.SetDefault(slog.New(
				slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLevel(v.GetString("log-level"))}),
			))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug|info|warn|error")
	bind(v, "config", rootCmd.PersistentFlags().Lookup("config"))
	bind(v, "log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.SetEnvPrefix("CREATIONAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// abstract-factory
	afCmd := &cobra.Command{
		Use:     "abstract-factory",
		Aliases: []string{"af"},
		Short:   "Render a matched widget family per platform",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, "abstract-factory", demoConfig(v))
		},
	}
	afCmd.Flags().StringSlice("platforms", nil, "platforms to render: windows,mac (default all)")
	bind(v, "abstract-factory.platforms", afCmd.Flags().Lookup("platforms"))
	rootCmd.AddCommand(afCmd)

	// builder
	builderCmd := &cobra.Command{
		Use:     "builder",
		Aliases: []string{"b"},
		Short:   "Build houses from the director's recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, "builder", demoConfig(v))
		},
	}
	builderCmd.Flags().StringSlice("recipes", nil, "recipes to build: simple,luxury (default all)")
	builderCmd.Flags().String("output", demo.FormatText, "output format: text|json|yaml")
	bind(v, "builder.recipes", builderCmd.Flags().Lookup("recipes"))
	bind(v, "builder.output", builderCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(builderCmd)

	// house
	var walls, doors, windows, roof string
	houseCmd := &cobra.Command{
		Use:   "house",
		Short: "Build a single house from flags; unset parts stay empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := house.NewBuilder()
			if cmd.Flags().Changed("walls") {
				b.SetWalls(walls)
			}
			if cmd.Flags().Changed("doors") {
				b.SetDoors(doors)
			}
			if cmd.Flags().Changed("windows") {
				b.SetWindows(windows)
			}
			if cmd.Flags().Changed("roof") {
				b.SetRoof(roof)
			}
			return demo.WriteHouses(cmd.OutOrStdout(), v.GetString("house.output"), []house.House{b.Build()})
		},
	}
	houseCmd.Flags().StringVar(&walls, "walls", "", "walls")
	houseCmd.Flags().StringVar(&doors, "doors", "", "doors")
	houseCmd.Flags().StringVar(&windows, "windows", "", "windows")
	houseCmd.Flags().StringVar(&roof, "roof", "", "roof")
	houseCmd.Flags().String("output", demo.FormatText, "output format: text|json|yaml")
	bind(v, "house.output", houseCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(houseCmd)

	// factory-method
	fmCmd := &cobra.Command{
		Use:     "factory-method",
		Aliases: []string{"fm"},
		Short:   "Draw shapes created by kind, then via the shape sum type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, "factory-method", demoConfig(v))
		},
	}
	fmCmd.Flags().StringSlice("shapes", nil, "shapes to draw: circle,rectangle (default all)")
	fmCmd.Flags().Bool("skip-variants", false, "skip the sum-type pass")
	bind(v, "factory-method.shapes", fmCmd.Flags().Lookup("shapes"))
	bind(v, "factory-method.skip-variants", fmCmd.Flags().Lookup("skip-variants"))
	rootCmd.AddCommand(fmCmd)

	// all
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Run every demo in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := demoConfig(v)
			for i, kind := range demo.Names() {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := runDemo(cmd, kind, cfg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(allCmd)

	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), "creational> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				// fresh tree per line so flag values do not leak between commands
				next := newRootCmd(v)
				next.SetArgs(strings.Fields(line))
				next.SetOut(cmd.OutOrStdout())
				next.SetErr(cmd.ErrOrStderr())
				if err := next.ExecuteContext(cmd.Context()); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	return rootCmd
}

func bind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func demoConfig(v *viper.Viper) demo.Config {
	return demo.Config{
		Platforms:    listSetting(v, "abstract-factory.platforms"),
		Recipes:      listSetting(v, "builder.recipes"),
		Format:       v.GetString("builder.output"),
		Shapes:       listSetting(v, "factory-method.shapes"),
		SkipVariants: v.GetBool("factory-method.skip-variants"),
	}
}

// listSetting reads a list the way the flags accept it: env and config values
// may be comma-separated as well as whitespace-separated or a real list.
func listSetting(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

func runDemo(cmd *cobra.Command, kind string, cfg demo.Config) error {
	runID := uuid.NewString()
	d, err := demo.NewDemo(kind, cfg)
	if err != nil {
		slog.Error("demo setup failed", "demo", kind, "run_id", runID, "error", err)
		return err
	}

	start := time.Now()
	if err := d.Run(cmd.Context(), cmd.OutOrStdout()); err != nil {
		slog.Error("demo failed", "demo", d.Name(), "run_id", runID, "error", err)
		return fmt.Errorf("%s: %w", d.Name(), err)
	}
	slog.Info("demo finished", "demo", d.Name(), "run_id", runID, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Execute runs the full CLI against os.Args.
func Execute() error {
	return newRootCmd(viper.New()).ExecuteContext(context.Background())
}

// ExecuteDemo runs a single demo as if invoked as "creational <kind>",
// forwarding any command-line flags.
func ExecuteDemo(kind string) error {
	rootCmd := newRootCmd(viper.New())
	rootCmd.SetArgs(append([]string{kind}, os.Args[1:]...))
	return rootCmd.ExecuteContext(context.Background())
}
