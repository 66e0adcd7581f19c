package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rhino1998/forof/pkg/interpreter"
	"github.com/rhino1998/forof/pkg/scenarios"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func loadConfig(path string) (interpreter.Config, error) {
	config := interpreter.DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	return config, nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func scenarioArg(c *cli.Command) (scenarios.Scenario, error) {
	if c.Args().Len() != 1 {
		return scenarios.Scenario{}, fmt.Errorf("must provide exactly one scenario name as argument")
	}

	return scenarios.Lookup(c.Args().First())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "forof",
		Usage: "Run for-of loop scenarios on the tree-walking interpreter",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the built-in scenarios",
				Action: func(ctx context.Context, c *cli.Command) error {
					for _, sc := range scenarios.All() {
						fmt.Printf("%-24s %s\n", sc.Name, sc.Description)
					}

					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print the program of a scenario",
				Action: func(ctx context.Context, c *cli.Command) error {
					sc, err := scenarioArg(c)
					if err != nil {
						return err
					}

					fmt.Print(sc.String())
					return nil
				},
			},
			{
				Name:  "run",
				Usage: "Execute a scenario and print its output and result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML file with interpreter settings",
					},
					&cli.BoolFlag{
						Name:    "debug",
						Aliases: []string{"d"},
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					sc, err := scenarioArg(c)
					if err != nil {
						return err
					}

					logger := newLogger(c.Bool("debug"))

					config, err := loadConfig(c.String("config"))
					if err != nil {
						return err
					}

					interp, err := interpreter.New(logger, config)
					if err != nil {
						return fmt.Errorf("failed to initialize interpreter: %w", err)
					}

					result, _, err := scenarios.Run(interp, sc, os.Stdout)
					if err != nil {
						fmt.Fprintf(os.Stderr, "%v\n", err)
						os.Exit(1)
					}

					fmt.Printf("=> %s\n", result)
					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}
