// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command whiptui exercises every dialog box of the whiptui library
// against a live whiptail renderer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shayne/yargs"

	"github.com/xuranus/whiptui/internal/config"
)

func main() {
	if err := runCLI(); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	fmt.Fprintln(os.Stderr, "whiptui:", err)
}

var (
	version = "dev"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("whiptui %s (%s)", version, commit)
	}
	return "whiptui " + version
}

func runCLI() error {
	args := os.Args[1:]
	handlers := map[string]yargs.SubcommandHandler{
		"message":   handleMessageCommand,
		"confirm":   handleConfirmCommand,
		"info":      handleInfoCommand,
		"textbox":   handleTextboxCommand,
		"menu":      handleMenuCommand,
		"checklist": handleChecklistCommand,
		"radiolist": handleRadiolistCommand,
		"input":     handleInputCommand,
		"form":      handleFormCommand,
		"gauge":     handleGaugeCommand,
		"all":       handleAllCommand,
		"config":    handleConfigCommand,
		"version":   handleVersionCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

// dialogFlags are shared by every dialog subcommand. Empty values fall
// back to the config file, then to the library defaults.
type dialogFlags struct {
	Renderer  string `flag:"renderer" help:"renderer binary to run (default: whiptail)"`
	Term      string `flag:"term" help:"TERM override for the renderer"`
	Title     string `flag:"title" help:"dialog title"`
	Backtitle string `flag:"backtitle" help:"dialog backtitle"`
	Height    int    `flag:"height" help:"dialog height (default: derived from the terminal)"`
	Width     int    `flag:"width" help:"dialog width (default: derived from the terminal)"`
	NoColor   bool   `flag:"no-color" help:"disable styled output"`
}

type textArgs struct {
	Text string `pos:"0" help:"dialog text"`
}

type fileArgs struct {
	File string `pos:"0" help:"file to display"`
}

type listFlags struct {
	Renderer  string   `flag:"renderer" help:"renderer binary to run (default: whiptail)"`
	Term      string   `flag:"term" help:"TERM override for the renderer"`
	Title     string   `flag:"title" help:"dialog title"`
	Backtitle string   `flag:"backtitle" help:"dialog backtitle"`
	Height    int      `flag:"height" help:"dialog height (default: derived from the terminal)"`
	Width     int      `flag:"width" help:"dialog width (default: derived from the terminal)"`
	NoColor   bool     `flag:"no-color" help:"disable styled output"`
	Items     []string `flag:"item" help:"list entry as key=description (repeatable)"`
	Selected  []string `flag:"selected" help:"key to preselect (repeatable)"`
}

func (f listFlags) dialog() dialogFlags {
	return dialogFlags{
		Renderer: f.Renderer, Term: f.Term, Title: f.Title, Backtitle: f.Backtitle,
		Height: f.Height, Width: f.Width, NoColor: f.NoColor,
	}
}

type inputFlags struct {
	Renderer    string `flag:"renderer" help:"renderer binary to run (default: whiptail)"`
	Term        string `flag:"term" help:"TERM override for the renderer"`
	Title       string `flag:"title" help:"dialog title"`
	Backtitle   string `flag:"backtitle" help:"dialog backtitle"`
	Height      int    `flag:"height" help:"dialog height (default: derived from the terminal)"`
	Width       int    `flag:"width" help:"dialog width (default: derived from the terminal)"`
	NoColor     bool   `flag:"no-color" help:"disable styled output"`
	Placeholder string `flag:"placeholder" help:"initial text in the edit field"`
	Password    bool   `flag:"password" help:"mask the input"`
	IP          bool   `flag:"ip" help:"require an IPv4 address"`
	Copy        bool   `flag:"copy" help:"copy the submitted value to the clipboard"`
}

func (f inputFlags) dialog() dialogFlags {
	return dialogFlags{
		Renderer: f.Renderer, Term: f.Term, Title: f.Title, Backtitle: f.Backtitle,
		Height: f.Height, Width: f.Width, NoColor: f.NoColor,
	}
}

type gaugeFlags struct {
	Renderer  string `flag:"renderer" help:"renderer binary to run (default: whiptail)"`
	Term      string `flag:"term" help:"TERM override for the renderer"`
	Title     string `flag:"title" help:"dialog title"`
	Backtitle string `flag:"backtitle" help:"dialog backtitle"`
	Height    int    `flag:"height" help:"dialog height (default: derived from the terminal)"`
	Width     int    `flag:"width" help:"dialog width (default: derived from the terminal)"`
	NoColor   bool   `flag:"no-color" help:"disable styled output"`
	Steps     int    `flag:"steps" help:"number of percent updates to stream (default 100)"`
}

func (f gaugeFlags) dialog() dialogFlags {
	return dialogFlags{
		Renderer: f.Renderer, Term: f.Term, Title: f.Title, Backtitle: f.Backtitle,
		Height: f.Height, Width: f.Width, NoColor: f.NoColor,
	}
}

type configFlags struct {
	Renderer  string `flag:"renderer" help:"set default renderer binary"`
	Term      string `flag:"term" help:"set default TERM override"`
	Backtitle string `flag:"backtitle" help:"set default backtitle"`
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "whiptui",
		Description: "drive whiptail dialog boxes from the command line",
		Examples: []string{
			"whiptui message 'hello world'",
			"whiptui confirm 'continue?'",
			"whiptui menu --item one=First --item two=Second",
			"whiptui input --ip --placeholder 192.168",
			"whiptui form",
			"whiptui gauge --steps 50",
			"whiptui all",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"message": {
			Name:        "message",
			Description: "Show a message box",
			Usage:       "<text>",
		},
		"confirm": {
			Name:        "confirm",
			Description: "Ask a yes/no question",
			Usage:       "<text>",
		},
		"info": {
			Name:        "info",
			Description: "Flash an info box",
			Usage:       "<text>",
		},
		"textbox": {
			Name:        "textbox",
			Description: "View a file in a scrollable box",
			Usage:       "<file>",
		},
		"menu": {
			Name:        "menu",
			Description: "Pick one entry from a menu",
			Usage:       "--item key=description ...",
		},
		"checklist": {
			Name:        "checklist",
			Description: "Pick any number of entries from a list",
			Usage:       "--item key=description [--selected key] ...",
		},
		"radiolist": {
			Name:        "radiolist",
			Description: "Pick exactly one entry from a list",
			Usage:       "--item key=description [--selected key] ...",
		},
		"input": {
			Name:        "input",
			Description: "Prompt for a line of text",
			Usage:       "[<text>]",
		},
		"form": {
			Name:        "form",
			Description: "Run the login form demo and print a credentials line",
		},
		"gauge": {
			Name:        "gauge",
			Description: "Stream progress into a gauge",
		},
		"all": {
			Name:        "all",
			Description: "Run every dialog in sequence",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the stored defaults",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	flags := result.SubCommandFlags
	changed := false
	if flags.Renderer != "" {
		cfg.Renderer = flags.Renderer
		changed = true
	}
	if flags.Term != "" {
		cfg.Term = flags.Term
		changed = true
	}
	if flags.Backtitle != "" {
		cfg.Backtitle = flags.Backtitle
		changed = true
	}
	if changed {
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}
	fmt.Fprintf(os.Stdout, "config: %s\n", path)
	fmt.Fprintf(os.Stdout, "  renderer:  %s\n", orDefault(cfg.Renderer, "whiptail"))
	fmt.Fprintf(os.Stdout, "  term:      %s\n", orDefault(cfg.Term, "(inherited)"))
	fmt.Fprintf(os.Stdout, "  backtitle: %s\n", orDefault(cfg.Backtitle, "(none)"))
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
