package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"seqwizard/internal/config"
	"seqwizard/internal/constants"
	"seqwizard/internal/dialog"
	"seqwizard/internal/sequence"
	"seqwizard/internal/system"
	"seqwizard/internal/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type deps struct {
	fs      system.FileSystem
	newApp  func(model tea.Model) Application
	logfile func() (*os.File, error)
}

func rootCmd(d deps) *cobra.Command {
	var debugFlag bool
	var logFile *os.File

	cmd := &cobra.Command{
		Use:           "seqwizard",
		Short:         constants.App.Title,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, debugEnv := os.LookupEnv("DEBUG")

			f, err := setupLogging(debugFlag || debugEnv, d.logfile)
			if err != nil {
				return fmt.Errorf("could not set up logging: %w", err)
			}
			logFile = f
			return nil
		},
	}

	closeLog := func() {
		if logFile == nil {
			return
		}
		log.SetOutput(io.Discard)
		logFile.Close()
		logFile = nil
	}

	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug.log to the working directory")

	// cobra skips PersistentPostRun when RunE fails, so each subcommand
	// closes the log on its way out.
	for _, sub := range []*cobra.Command{runCmd(d), validateCmd(d), demoCmd(d)} {
		runE := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			defer closeLog()
			return runE(cmd, args)
		}
		cmd.AddCommand(sub)
	}
	return cmd
}

func runCmd(d deps) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "run <file.toml>",
		Short: "Run the wizard described by a TOML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.Load(d.fs, args[0])
			if err != nil {
				return err
			}
			return runDefinition(cmd, d, def, strategy)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Override the definition's strategy (linear, collection or chain)")
	return cmd
}

func validateCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.toml>",
		Short: "Check a wizard definition without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.Load(d.fs, args[0])
			if err != nil {
				return err
			}

			strategy, _ := config.ParseStrategy(def.Strategy)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %q, %d steps, %s strategy\n", def.Title, len(def.Steps), strategy)
			return nil
		},
	}
}

func demoCmd(d deps) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in workstation setup wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := config.Parse(demoDefinition)
			if err != nil {
				return fmt.Errorf("built-in definition: %w", err)
			}
			return runDefinition(cmd, d, def, strategy)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Override the demo's strategy (linear, collection or chain)")
	return cmd
}

func runDefinition(cmd *cobra.Command, d deps, def config.Definition, strategy string) error {
	if strategy != "" {
		def.Strategy = strategy
		if err := def.Validate(); err != nil {
			return err
		}
	}

	buttons, err := dialog.ParseOrientation(def.Buttons)
	if err != nil {
		return err
	}

	wizard := config.Build(def)
	model := dialog.New(
		wizard.Title,
		wizard.Source,
		types.DefaultKeys(),
		dialog.WithButtons(buttons),
	)

	if err := run(d.newApp(model)); err != nil {
		return err
	}

	log.Printf("main: wizard closed with %s", model.Result())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, model.Outcome())
	if model.Result() == sequence.ResultOK {
		for _, a := range wizard.Answers(model.Content()) {
			if a.Value != "" {
				fmt.Fprintf(out, "  %s: %s\n", a.Label, a.Value)
			}
		}
	}
	fmt.Fprintln(out, constants.App.Bye)
	return nil
}
