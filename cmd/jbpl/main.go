// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jbpl highlights JBPL bytecode-patch sources.  Output goes to the
// terminal by default, with the formatter matched to the detected color
// profile; -f selects html output or a raw token dump instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/karmakrafts/rouge/highlight"
	"github.com/karmakrafts/rouge/lex"
)

type config struct {
	Style   string `yaml:"style"`
	Format  string `yaml:"format"`
	TabSize int    `yaml:"tabsize"`
}

var (
	formatFlag = flag.String("f", "", "output format: a chroma formatter name or 'tokens' (default: terminal formatter for the detected color profile)")
	styleFlag  = flag.String("s", "", "chroma style name")
	outFlag    = flag.String("o", "", "output file (default stdout; single input only)")
	confFlag   = flag.String("c", "", "YAML config file with style, format and tabsize defaults")
	watchFlag  = flag.Bool("w", false, "watch input files and re-render on change")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no input files")
	}
	cfg := config{Style: "monokai", TabSize: 4}
	if *confFlag != "" {
		data, err := os.ReadFile(*confFlag)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("%s: %w", *confFlag, err)
		}
	}
	if *styleFlag != "" {
		cfg.Style = *styleFlag
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if cfg.Format == "" {
		cfg.Format = terminalFormat()
	}
	if *outFlag != "" && len(files) > 1 {
		return fmt.Errorf("-o requires a single input file")
	}
	for _, f := range files {
		if err := render(f, cfg); err != nil {
			return err
		}
	}
	if *watchFlag {
		return watch(files, cfg)
	}
	return nil
}

// terminalFormat returns the chroma terminal formatter matching the
// detected color profile
func terminalFormat() string {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal8"
	}
	return "noop"
}

func render(path string, cfg config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if cfg.Format == "tokens" {
		return dumpTokens(w, string(data))
	}
	return highlight.Format(w, cfg.Format, cfg.Style, string(data))
}

func dumpTokens(w io.Writer, src string) error {
	rs := []rune(src)
	for _, lx := range lex.LexString(src) {
		_, err := fmt.Fprintf(w, "%4d %4d  %-18s %q\n", lx.St, lx.Ed, lx.Tok.String(), string(lx.Src(rs)))
		if err != nil {
			return err
		}
	}
	return nil
}

// watch re-renders each input file when it changes, until interrupted
func watch(files []string, cfg config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			return err
		}
	}
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				if err := render(ev.Name, cfg); err != nil {
					slog.Error(err.Error())
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error(err.Error())
		}
	}
}
