package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jask/ariakit/internal/config"
	"github.com/jask/ariakit/internal/database"
	"github.com/jask/ariakit/internal/database/repository"
	"github.com/jask/ariakit/internal/tui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ariakit",
		Short:        "Interactive demo of the ariakit interaction patterns",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}
	cmd.AddCommand(newRunCmd(), newKeysCmd(), newSeedCmd(), newConfigCmd())
	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the demo TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}
}

func newKeysCmd() *cobra.Command {
	var raw bool
	var width int
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key map of every pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			md := tui.KeysMarkdown()
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render keys: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().IntVar(&width, "width", 100, "wrap width")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var paths []string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add catalog entries (\"Fruit > Apple\"); defaults when none given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			db, err := database.OpenAndMigrate(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			ctx := cmd.Context()
			if len(paths) == 0 {
				paths = database.DefaultCatalog
			}
			if err := database.SeedCatalog(ctx, db, paths); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			entries, err := repository.NewCatalogRepo(db).List(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog has %d entries\n", len(entries))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&paths, "path", nil, "catalog path, repeatable")
	return cmd
}

func newConfigCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			problems := cfg.Validate()
			for _, p := range problems {
				fmt.Fprintln(cmd.ErrOrStderr(), "config:", p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d config problem(s)", len(problems))
			}
			if save {
				if err := config.Save(cfg); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the effective config back to disk")
	return cmd
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	for _, p := range cfg.Validate() {
		log.Printf("warn: %s", p)
	}
	return cfg
}

func runTUI(ctx context.Context) error {
	cfg := loadConfig()

	if path := strings.TrimSpace(cfg.UI.LogFile); path != "" {
		f, err := tea.LogToFile(path, "ariakit")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	db, err := database.OpenAndMigrate(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repos := tui.Repos{Catalog: repository.NewCatalogRepo(db), State: repository.NewStateRepo(db)}
	p := tea.NewProgram(tui.New(ctx, cfg, repos), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
