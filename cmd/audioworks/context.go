package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"audioworks/internal/config"
	"audioworks/internal/gate"
	"audioworks/internal/library"
	"audioworks/internal/probe"
	"audioworks/internal/scanner"
	"audioworks/internal/tracks"
	"audioworks/internal/tree"
)

const configEnvVar = "AUDIOWORKS_CONFIG"

// commandContext lazily loads configuration and assembles the engine's
// collaborators, shared by every subcommand. The gate is constructed once
// so all probe invocations in one process compete for the same slots.
type commandContext struct {
	configFlag *string

	cfg    *config.Config
	prober *probe.Prober
	lister *tracks.Lister
	walker *scanner.Walker
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensure loads configuration and builds components on first use.
func (c *commandContext) ensure() error {
	if c.cfg != nil {
		return nil
	}

	path := *c.configFlag
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		path = "config.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	g, err := gate.New(cfg.MaxParallelism)
	if err != nil {
		return err
	}
	walker, err := scanner.NewWalker(cfg.ScannerMaxRecursionDepth)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.prober = probe.New(cfg.ProbeBinary, cfg.ProbeTimeoutValue(), g)
	c.lister = tracks.NewLister(c.prober)
	c.walker = walker
	return nil
}

func (c *commandContext) treeOptions() tree.Options {
	return tree.Options{
		Offload:             c.cfg.OffloadMedia,
		OffloadStreamPath:   c.cfg.OffloadStreamPath,
		OffloadDownloadPath: c.cfg.OffloadDownloadPath,
	}
}

func (c *commandContext) library() *library.Library {
	return library.New(c.cfg.RootFolders, c.walker, c.lister, c.cfg.ScanLockPath, c.treeOptions())
}

// writeJSON renders a command result as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
