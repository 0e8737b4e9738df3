package main

import (
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"seqwizard/internal/system"

	tea "github.com/charmbracelet/bubbletea"
)

//go:embed demo.toml
var demoDefinition []byte

type Application interface {
	Run() error
}

type TUIApp struct {
	program *tea.Program
}

func (app *TUIApp) Run() error {
	_, err := app.program.Run()
	return err
}

func newTUIApp(model tea.Model) Application {
	wrapped := &PanicCatchingModel{Model: model}
	return &TUIApp{program: tea.NewProgram(wrapped, tea.WithAltScreen())}
}

type PanicCatchingModel struct {
	Model tea.Model
}

func main() {
	cmd := rootCmd(deps{
		fs:      system.LiveFileSystem{},
		newApp:  newTUIApp,
		logfile: logfileCreator,
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(app Application) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in main: %v\nStack trace:\n%s", r, debug.Stack())
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	log.Println("booting...")

	if err := app.Run(); err != nil {
		log.Printf("Application error: %v", err)
		return fmt.Errorf("application error: %w", err)
	}

	return nil
}

func (m *PanicCatchingModel) Init() tea.Cmd {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in Init: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()
	return m.Model.Init()
}

func (m *PanicCatchingModel) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in Update: %v\nStack trace:\n%s", r, debug.Stack())
			model, cmd = m, nil
		}
	}()

	updatedModel, cmd := m.Model.Update(msg)
	m.Model = updatedModel

	return m, cmd
}

func (m *PanicCatchingModel) View() string {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in View: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()
	return m.Model.View()
}

func setupLogging(
	debugEnabled bool,
	createFile func() (*os.File, error),
) (*os.File, error) {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	return createFile()
}

func logfileCreator() (*os.File, error) {
	return tea.LogToFile("debug.log", "debug")
}
