package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"anglermatch/cmd/angler/ui"
	"anglermatch/cmd/angler/wizard"
	"anglermatch/internal/catalog"
	"anglermatch/internal/config"
	"anglermatch/internal/geo"
	"anglermatch/internal/logging"
	"anglermatch/internal/onboarding"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// runWizard launches the interactive onboarding and matching UI, then
// prints a short summary of the session once the user quits.
func runWizard(ctx context.Context, out io.Writer) error {
	anglers, err := catalog.LoadAnglers(cfg.Deck.File)
	if err != nil {
		return err
	}

	styles := ui.NewStyles(ui.DetectTheme(cfg.UI.DarkMode))
	ctrl := onboarding.NewController()
	logger.Info("session started",
		zap.String("session", ctrl.Session().ID),
		zap.Int("deck_size", len(anglers)))

	model := wizard.New(wizard.Options{
		Title:         cfg.Name,
		Styles:        &styles,
		Controller:    ctrl,
		Locator:       geo.FromConfig(cfg.Device),
		Anglers:       anglers,
		DefaultRadius: cfg.Location.DefaultRadius,
		ToastDuration: cfg.UI.GetToastDuration(),
		Context:       ctx,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard exited: %w", err)
	}

	printSummary(out, ctrl.Session(), anglers)
	if path := logging.Path(); path != "" {
		fmt.Fprintf(out, "Debug log: %s\n", path)
	}
	return nil
}

func showDeck(cmd *cobra.Command, args []string) error {
	anglers, err := catalog.LoadAnglers(cfg.Deck.File)
	if err != nil {
		return err
	}
	printDeck(cmd.OutOrStdout(), anglers)
	return nil
}

func showCalendar(cmd *cobra.Command, args []string) error {
	printCalendar(cmd.OutOrStdout(), time.Now())
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}
	if err := config.DefaultConfig().Save(cfgPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", cfgPath)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
