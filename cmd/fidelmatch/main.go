// Copyright 2025 The fidelmatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the fidelmatch name matcher as an IPC server or a debug CLI.

fidelmatch decides whether a name written in Ethiopic script and a name written in
Latin script are the same name, and expands search queries into their script
variants for search backends.

# Usage

Start the msgpack IPC server with the default config:

	fidelmatch

Merge an extra dictionary and enable debug logging:

	fidelmatch -dict names.tsv -d

Run the interactive CLI with fuzzy matching on:

	fidelmatch -c -fuzzy

Write the merged dictionary as a msgpack file and exit:

	fidelmatch -dict names.tsv -export names.bin

# Configuration

The config file lives at [UserConfigDir]/fidelmatch/config.toml and is created with
defaults when missing:

	[match]
	fuzzy = false
	max_distance = 2.0

	[translit]
	cache_size = 1000

	[validate]
	max_name_length = 100

	[dict]
	extra_files = ["names.tsv"]

Dictionary files are either tab separated text (.tsv, .txt) or msgpack (.bin).

# IPC Protocol

See package server. Each request is a msgpack map:

	{"id": "r1", "action": "match", "name": "አማኑኤል", "query": "amanuel"}

and gets exactly one response:

	{"id": "r1", "m": true, "t": 41}
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/fidelmatch/internal/cli"
	"github.com/bastiangx/fidelmatch/internal/utils"
	"github.com/bastiangx/fidelmatch/pkg/config"
	"github.com/bastiangx/fidelmatch/pkg/dictionary"
	"github.com/bastiangx/fidelmatch/pkg/match"
	"github.com/bastiangx/fidelmatch/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "fidelmatch"
	gh      = "https://github.com/bastiangx/fidelmatch"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and engine, then hands over to the CLI or server.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configFlag := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	dictFlag := flag.String("dict", "", "Extra dictionary file merged over the builtin table (.tsv, .txt, .bin)")
	exportPath := flag.String("export", "", "Write the merged dictionary as msgpack to this path and exit")
	fuzzy := flag.Bool("fuzzy", false, "CLI: enable fuzzy matching")
	phonetic := flag.Bool("phonetic", false, "CLI: enable phonetic matching")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver(AppName)
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, configPath := loadConfig(pathResolver, *configFlag)
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	files := appConfig.Dict.ExtraFiles
	if *dictFlag != "" {
		files = append(files, *dictFlag)
	}
	entries, err := loadDictionary(pathResolver, files)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	if *exportPath != "" {
		if err := dictionary.WriteBinary(*exportPath, entries); err != nil {
			log.Fatalf("Failed to export dictionary: %v", err)
		}
		log.Infof("Wrote %d entries to %s (dictionary %s)", len(entries), *exportPath, dictionary.Fingerprint(entries))
		return
	}

	engine := match.New(entries, appConfig.EngineSettings())

	// CLI is mainly used for testing and debugging matcher changes.
	if *cliMode {
		log.SetReportTimestamp(false)
		opts := appConfig.MatchOptions()
		opts.Fuzzy = opts.Fuzzy || *fuzzy
		opts.Phonetic = opts.Phonetic || *phonetic
		log.Debug("CLI options:", "fuzzy", opts.Fuzzy, "phonetic", opts.Phonetic, "maxDistance", opts.MaxDistance)

		inputHandler := cli.NewInputHandler(engine, opts, appConfig.TranslitOptions())
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)
	showStartupInfo(len(entries), engine.Fingerprint())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadConfig prefers the -config path and falls back to the default location.
func loadConfig(pr *utils.PathResolver, customPath string) (*config.Config, string) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			cfg, err := config.LoadConfig(customPath)
			if err == nil {
				return cfg, customPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	defaultPath := pr.GetConfigPath("config.toml")
	cfg, err := config.InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at %s: %v. Using builtin defaults...", defaultPath, err)
		return config.DefaultConfig(), ""
	}
	return cfg, defaultPath
}

// loadDictionary merges every resolvable extra file over the builtin table.
// A file named explicitly that cannot be read is fatal to the caller.
func loadDictionary(pr *utils.PathResolver, files []string) ([]dictionary.Entry, error) {
	tables := make([][]dictionary.Entry, 0, len(files))
	for _, f := range files {
		path, err := pr.ResolveFile(f)
		if err != nil {
			return nil, fmt.Errorf("dictionary file %s: %w", f, err)
		}
		entries, err := dictionary.LoadFile(path)
		if err != nil {
			return nil, err
		}
		tables = append(tables, entries)
	}
	return dictionary.Merge(dictionary.Default(), tables...), nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ fidelmatch ] Ethiopic / Latin name matching")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(entries int, fingerprint string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: %d entries [ %s ]", entries, fingerprint)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
