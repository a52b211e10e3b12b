//go:build !js

// mkconfig writes the default playground config as YAML, ready to edit and pass via -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"playground/internal/config"
)

const defaultConfigPath = "playground.yaml"

func main() {
	var outPath string
	var force bool
	flag.StringVar(&outPath, "out", defaultConfigPath, "Output path (- for stdout).")
	flag.BoolVar(&force, "force", false, "Overwrite an existing file.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	if err := run(outPath, force, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, force bool, stdout io.Writer) error {
	cfg := config.Default()
	if outPath == "-" {
		return config.Write(stdout, cfg)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(outPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%q exists (use -force to overwrite)", outPath)
		}
		return fmt.Errorf("open %q: %w", outPath, err)
	}
	if err := config.Write(f, cfg); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", outPath, err)
	}
	return nil
}
