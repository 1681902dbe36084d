// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shayne/yargs"
	"golang.org/x/crypto/bcrypt"

	"github.com/xuranus/whiptui"
	"github.com/xuranus/whiptui/internal/clipboard"
	"github.com/xuranus/whiptui/internal/config"
)

// session carries the merged renderer settings for one CLI run:
// command-line flags win over the config file, which wins over the
// library defaults.
type session struct {
	renderer *whiptui.Whiptail
	opts     whiptui.Options
	height   int
	width    int
	style    styler
}

func newSession(flags dialogFlags) (*session, error) {
	cfg, _, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	renderer := &whiptui.Whiptail{
		Path:    firstNonEmpty(flags.Renderer, cfg.Renderer),
		TermEnv: firstNonEmpty(flags.Term, cfg.Term),
	}
	opts := whiptui.Options{
		Title:     firstNonEmpty(flags.Title, cfg.Title),
		Backtitle: firstNonEmpty(flags.Backtitle, cfg.Backtitle),
	}
	return &session{
		renderer: renderer,
		opts:     opts,
		height:   flags.Height,
		width:    flags.Width,
		style:    newStyler(!flags.NoColor && !cfg.NoColor),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func handleMessageCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dialogFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags)
	if err != nil {
		return err
	}
	return s.message(result.Args.Text)
}

func (s *session) message(text string) error {
	box, err := whiptui.NewMessageBox(whiptui.MessageConfig{
		Message: text,
		Height:  s.height,
		Width:   s.width,
		Options: s.opts,
		Invoker: s.renderer,
		OnOK:    func() { s.report("ok", "message acknowledged") },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func handleConfirmCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dialogFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags)
	if err != nil {
		return err
	}
	return s.confirm(result.Args.Text)
}

func (s *session) confirm(text string) error {
	box, err := whiptui.NewYesNoBox(whiptui.YesNoConfig{
		Message: text,
		Height:  s.height,
		Width:   s.width,
		Options: s.opts,
		Invoker: s.renderer,
		OnYes:   func() { s.report("yes", "confirmed") },
		OnNo:    func() { s.report("no", "declined") },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func handleInfoCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dialogFlags, textArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags)
	if err != nil {
		return err
	}
	return s.info(result.Args.Text)
}

func (s *session) info(text string) error {
	box, err := whiptui.NewInfoBox(whiptui.InfoConfig{
		Message: text,
		Height:  s.height,
		Width:   s.width,
		Options: s.opts,
		Invoker: s.renderer,
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func handleTextboxCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dialogFlags, fileArgs](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags)
	if err != nil {
		return err
	}
	return s.textbox(result.Args.File)
}

func (s *session) textbox(file string) error {
	box, err := whiptui.NewTextBox(whiptui.TextConfig{
		File:     file,
		Height:   s.height,
		Width:    s.width,
		Options:  whiptui.Options{ScrollText: true, Title: s.opts.Title, Backtitle: s.opts.Backtitle},
		Invoker:  s.renderer,
		OnOK:     func() { s.report("ok", "viewer closed") },
		OnFailed: func() { s.report("failed", "could not open "+file) },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

// parseItems splits repeated key=description flags.
func parseItems(raw []string) ([][2]string, error) {
	if len(raw) == 0 {
		return nil, newUsageError("at least one --item key=description is required")
	}
	items := make([][2]string, 0, len(raw))
	for _, entry := range raw {
		key, desc, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, newUsageError(fmt.Sprintf("invalid --item %q, want key=description", entry))
		}
		items = append(items, [2]string{key, desc})
	}
	return items, nil
}

func handleMenuCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, listFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags.dialog())
	if err != nil {
		return err
	}
	pairs, err := parseItems(result.SubCommandFlags.Items)
	if err != nil {
		return err
	}
	items := make([]whiptui.MenuItem, 0, len(pairs))
	for _, pair := range pairs {
		key := pair[0]
		items = append(items, whiptui.MenuItem{
			Key:         key,
			Description: pair[1],
			Data:        key,
			OnSelected:  func(data any) { s.report("selected", fmt.Sprint(data)) },
		})
	}
	box, err := whiptui.NewMenuBox(whiptui.MenuConfig{
		Message:         "pick an entry",
		Height:          s.height,
		Width:           s.width,
		Prefix:          "-",
		ShowDescription: true,
		Items:           items,
		Options:         s.opts,
		Invoker:         s.renderer,
		OnCancel:        func() { s.report("cancel", "menu cancelled") },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func buildSelectItems(raw, selected []string) ([]whiptui.SelectItem, error) {
	pairs, err := parseItems(raw)
	if err != nil {
		return nil, err
	}
	on := map[string]bool{}
	for _, key := range selected {
		on[key] = true
	}
	items := make([]whiptui.SelectItem, 0, len(pairs))
	for _, pair := range pairs {
		items = append(items, whiptui.SelectItem{
			Key:         pair[0],
			Description: pair[1],
			Selected:    on[pair[0]],
		})
	}
	return items, nil
}

func handleChecklistCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, listFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags.dialog())
	if err != nil {
		return err
	}
	items, err := buildSelectItems(result.SubCommandFlags.Items, result.SubCommandFlags.Selected)
	if err != nil {
		return err
	}
	box, err := whiptui.NewCheckListBox(whiptui.CheckListConfig{
		ListConfig: whiptui.ListConfig{
			Message:         "pick any entries",
			Height:          s.height,
			Width:           s.width,
			Prefix:          "-",
			ShowDescription: true,
			Items:           items,
			Options:         s.opts,
			Invoker:         s.renderer,
			OnCancel:        func() { s.report("cancel", "checklist cancelled") },
		},
		OnSubmit: func(keys []string) { s.report("selected", strings.Join(keys, ", ")) },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func handleRadiolistCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, listFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags.dialog())
	if err != nil {
		return err
	}
	items, err := buildSelectItems(result.SubCommandFlags.Items, result.SubCommandFlags.Selected)
	if err != nil {
		return err
	}
	box, err := whiptui.NewRadioListBox(whiptui.RadioListConfig{
		ListConfig: whiptui.ListConfig{
			Message:         "pick one entry",
			Height:          s.height,
			Width:           s.width,
			Prefix:          "-",
			ShowDescription: true,
			Items:           items,
			Options:         s.opts,
			Invoker:         s.renderer,
			OnCancel:        func() { s.report("cancel", "radiolist cancelled") },
		},
		OnSubmit: func(key string) { s.report("selected", key) },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

var ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)

// validIPv4 checks dotted-quad shape and octet range.
func validIPv4(value string) bool {
	if !ipv4Pattern.MatchString(value) {
		return false
	}
	for _, octet := range strings.Split(value, ".") {
		n, err := strconv.Atoi(octet)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func handleInputCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, inputFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	s, err := newSession(flags.dialog())
	if err != nil {
		return err
	}
	message := "enter a value"
	var validator func(string) bool
	errorMessage := ""
	if flags.IP {
		message = "enter an ip address"
		validator = validIPv4
		errorMessage = "invalid ip address!"
	}
	var accepted string
	cancelled := false
	box, err := whiptui.NewInputBox(whiptui.InputConfig{
		Message:      message,
		Height:       s.height,
		Width:        s.width,
		Placeholder:  flags.Placeholder,
		Password:     flags.Password,
		Validator:    validator,
		ErrorMessage: errorMessage,
		Options:      s.opts,
		Invoker:      s.renderer,
		OnSubmit:     func(value string) { accepted = value },
		OnCancel:     func() { cancelled = true },
	})
	if err != nil {
		return err
	}
	if err := box.Show(); err != nil {
		return err
	}
	if cancelled {
		s.report("cancel", "input cancelled")
		return nil
	}
	s.report("input", accepted)
	if flags.Copy {
		if err := clipboard.WriteText(accepted); err != nil {
			fmt.Fprintln(os.Stderr, "whiptui: clipboard:", err)
		} else {
			s.report("copied", "value placed on the clipboard")
		}
	}
	return nil
}

func handleFormCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dialogFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags)
	if err != nil {
		return err
	}
	return s.loginForm()
}

// loginForm runs the username/password form and prints a credentials
// line with the password bcrypt-hashed, suitable for a users file.
func (s *session) loginForm() error {
	var submitErr error
	box, err := whiptui.NewFormBox(whiptui.FormConfig{
		Message:     "input your login info",
		Height:      s.height,
		Width:       s.width,
		SubmitLabel: " LOGIN ",
		Items: []whiptui.FormItem{
			{
				Key:          "username",
				Name:         "user",
				Value:        "",
				Validator:    func(value string) bool { return len(value) > 0 && len(value) < 10 },
				ErrorMessage: "username must be 1-9 characters",
			},
			{
				Key:      "password",
				Name:     "passwd",
				Password: true,
			},
		},
		Options: s.opts,
		Invoker: s.renderer,
		OnSubmit: func(fields []whiptui.FormField) {
			line, err := credentialLine(fields)
			if err != nil {
				submitErr = err
				return
			}
			s.report("form", line)
		},
		OnCancel: func() { s.report("cancel", "form cancelled") },
	})
	if err != nil {
		return err
	}
	if err := box.Show(); err != nil {
		return err
	}
	return submitErr
}

// credentialLine renders submitted login fields as user:bcrypt-hash.
func credentialLine(fields []whiptui.FormField) (string, error) {
	var user, passwd string
	for _, field := range fields {
		switch field.Name {
		case "user":
			user = field.Value
		case "passwd":
			passwd = field.Value
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passwd), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return fmt.Sprintf("%s:bcrypt:%s", user, hash), nil
}

func handleGaugeCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, gaugeFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	s, err := newSession(flags.dialog())
	if err != nil {
		return err
	}
	steps := flags.Steps
	if steps <= 0 {
		steps = 100
	}
	return s.gauge(steps)
}

// gauge streams evenly spaced updates from 0 to 100 while a second
// goroutine (inside GaugeSession) waits on the renderer.
func (s *session) gauge(steps int) error {
	box, err := whiptui.NewGaugeBox(whiptui.GaugeConfig{
		Message:  "progress bar",
		Height:   s.height,
		Width:    s.width,
		Percent:  0,
		Options:  s.opts,
		Renderer: s.renderer,
	})
	if err != nil {
		return err
	}
	gs, err := box.Listen()
	if err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		percent := i * 100 / steps
		if err := gs.UpdatePercent(percent); err != nil {
			// The renderer went away mid-stream; its exit tells us why.
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err := gs.Terminate(); err != nil {
		return err
	}
	resp := gs.Wait()
	if resp.Outcome != whiptui.Positive {
		s.report("gauge", fmt.Sprintf("renderer exited with code %d", resp.Code))
		return nil
	}
	s.report("gauge", "completed")
	return nil
}

func handleAllCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, dialogFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := newSession(result.SubCommandFlags)
	if err != nil {
		return err
	}
	if err := s.message("message box content"); err != nil {
		return err
	}
	if err := s.confirm("choose yes or no"); err != nil {
		return err
	}
	if err := s.info("info box content"); err != nil {
		return err
	}
	if exe, err := os.Executable(); err == nil {
		if err := s.textbox(exe); err != nil {
			return err
		}
	}
	if err := s.menuDemo(); err != nil {
		return err
	}
	if err := s.checklistDemo(); err != nil {
		return err
	}
	if err := s.radiolistDemo(); err != nil {
		return err
	}
	if err := s.ipInputDemo(); err != nil {
		return err
	}
	if err := s.loginForm(); err != nil {
		return err
	}
	return s.gauge(100)
}

func demoSelectItems() []whiptui.SelectItem {
	return []whiptui.SelectItem{
		{Key: "item1", Description: "description1"},
		{Key: "item2", Description: "description2"},
		{Key: "item3", Description: "description3"},
	}
}

func (s *session) menuDemo() error {
	items := make([]whiptui.MenuItem, 0, 3)
	for _, si := range demoSelectItems() {
		key := si.Key
		items = append(items, whiptui.MenuItem{
			Key:         key,
			Description: si.Description,
			Data:        key,
			OnSelected:  func(data any) { s.report("selected", fmt.Sprint(data)) },
		})
	}
	box, err := whiptui.NewMenuBox(whiptui.MenuConfig{
		Message:         "menu box message",
		Height:          s.height,
		Width:           s.width,
		Prefix:          "-",
		ShowDescription: true,
		Items:           items,
		Options:         s.opts,
		Invoker:         s.renderer,
		OnCancel:        func() { s.report("cancel", "menu cancelled") },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func (s *session) checklistDemo() error {
	box, err := whiptui.NewCheckListBox(whiptui.CheckListConfig{
		ListConfig: whiptui.ListConfig{
			Message:         "list box",
			Height:          s.height,
			Width:           s.width,
			Prefix:          "-",
			ShowDescription: true,
			Items:           demoSelectItems(),
			Options:         s.opts,
			Invoker:         s.renderer,
			OnCancel:        func() { s.report("cancel", "checklist cancelled") },
		},
		OnSubmit: func(keys []string) { s.report("selected", strings.Join(keys, ", ")) },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func (s *session) radiolistDemo() error {
	box, err := whiptui.NewRadioListBox(whiptui.RadioListConfig{
		ListConfig: whiptui.ListConfig{
			Message:         "radio box",
			Height:          s.height,
			Width:           s.width,
			Prefix:          "-",
			ShowDescription: true,
			Items:           demoSelectItems(),
			Options:         s.opts,
			Invoker:         s.renderer,
			OnCancel:        func() { s.report("cancel", "radiolist cancelled") },
		},
		OnSubmit: func(key string) { s.report("selected", key) },
	})
	if err != nil {
		return err
	}
	return box.Show()
}

func (s *session) ipInputDemo() error {
	box, err := whiptui.NewInputBox(whiptui.InputConfig{
		Message:      "input an ip address",
		Height:       s.height,
		Width:        s.width,
		Placeholder:  "192.168",
		Validator:    validIPv4,
		ErrorMessage: "invalid ip address!",
		Options:      s.opts,
		Invoker:      s.renderer,
		OnSubmit:     func(value string) { s.report("input", value) },
		OnCancel:     func() { s.report("cancel", "input cancelled") },
	})
	if err != nil {
		return err
	}
	return box.Show()
}
