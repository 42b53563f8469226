package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/cupti/internal/logger"
	"github.com/samcharles93/cupti/internal/toolkit"
)

func runLocate(ctx context.Context, cmd *cli.Command, o *locateOptions, stdout, stderr io.Writer) error {
	cfg, cfgPath, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg, o)

	level := o.logLevel
	if o.debug {
		level = "debug"
	}
	log, err := logger.Open(stderr, o.logFormat, level)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx, log)

	target := toolkit.Target{Arch: o.arch, OS: o.goos, ABI: o.abi}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("cuptilocate: %w", err)
	}

	loc := &toolkit.Locator{
		Prefix:     o.prefix,
		ExtraRoots: cfg.ExtraRoots,
		SourceDir:  cfg.SourceDir,
		ConfigFile: cfgPath,
		Log:        logger.FromContext(ctx).With("target", target.String()),
	}
	plan := loc.Locate(target)

	if err := checkInstallation(loc, target, o.strict, log); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toolkit.Render(&buf, plan, o.format, toolkit.RenderOptions{Package: o.pkg, BuildTag: o.tags}); err != nil {
		return err
	}
	if o.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(o.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.output, err)
	}
	log.Info("wrote link directives", "path", filepath.Clean(o.output), "candidates", len(plan.Search))
	return nil
}

// checkInstallation probes the candidates. A miss is only reported unless
// strict is set; the linker produces the real failure otherwise.
func checkInstallation(loc *toolkit.Locator, target toolkit.Target, strict bool, log logger.Logger) error {
	m, err := loc.Probe(target)
	switch {
	case err == nil:
		log.Debug("libcupti present", "path", m.Path, "origin", m.Origin)
		return nil
	case errors.Is(err, toolkit.ErrLibraryNotFound) && !strict:
		log.Warn("libcupti not found in any candidate directory; deferring to the linker", "error", err)
		return nil
	default:
		return fmt.Errorf("cuptilocate: %w", err)
	}
}
