/*
Command svgicon inlines recolored SVG icons into CSS stylesheets.

It reads a stylesheet (or an HTML document with <style> elements) from a
file or from stdin, replaces all icon marker declarations, and writes the
result to stdout or to the file given with -o.

    svgicon --path ./icons styles.css -o styles.out.css

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/npillmayer/svgicon"
	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/cssom/douceuradapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "svgicon [file]",
		Short: "Inline recolored SVG icons into CSS",
		Long: `svgicon replaces declarations like

    background: svgicon(star, #c00);

by rules setting a background-image, which contains the icon file
star.svg, recolored and embedded as a data URI.
Input files ending in .html or .htm are treated as HTML documents,
all other input is treated as CSS.`,
		Example: `
# Transform a stylesheet, icons in ./svgs
svgicon styles.css

# Read from stdin, use icons ./icons/ic-*.svg
cat styles.css | svgicon --path ./icons --prefix ic- -o out.css
  `,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "YAML configuration file")
	flags.StringP("path", "p", svgicon.DefaultPath, "Directory containing the icon files")
	flags.String("prefix", "", "File name prefix of icon files")
	flags.String("function-name", svgicon.DefaultFunctionName, "Name of the marker function")
	flags.Bool("strip-styles", false, "Remove embedded <style> blocks from icons")
	flags.StringSlice("color-tags", nil, "Tags of colorable elements (default path,polygon)")
	flags.IntP("workers", "w", 0, "Number of icons rendered concurrently (0 = number of CPUs)")
	flags.StringP("output", "o", "", "Output file (default stdout)")
	flags.Bool("dump", false, "Log the resulting stylesheet tree (CSS input only)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.AddCommand(newSchemaCmd())
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configFile, nil)
	if err != nil {
		return err
	}
	cfg.applyFlags(cmd)
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	installTracing(logger)

	input, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("configuration", "path", cfg.Path, "prefix", cfg.Prefix,
		"function", cfg.FunctionName, "workers", cfg.Workers)

	var out bytes.Buffer
	var stats svgicon.Stats
	if isHTML(name) {
		stats, err = svgicon.TransformHTML(cmd.Context(), bytes.NewReader(input), &out, cfg.options())
	} else {
		var csstext string
		csstext, stats, err = svgicon.TransformCSS(cmd.Context(), string(input), cfg.options())
		out.WriteString(csstext)
	}
	if err != nil {
		logger.Error("transformation failed", "input", name, "err", err)
		return err
	}
	for _, w := range stats.Warnings {
		logger.Warn(w)
	}
	logger.Info("transformed", "input", name, "markers", stats.Markers,
		"icons", stats.Icons, "rules", stats.Rules)
	if dump, _ := cmd.Flags().GetBool("dump"); dump && !isHTML(name) {
		if err := dumpCSS(cmd.ErrOrStderr(), out.String()); err != nil {
			return err
		}
	}
	return writeOutput(cmd, out.Bytes())
}

// dumpCSS prints the tree of a transformed stylesheet.
func dumpCSS(w io.Writer, csstext string) error {
	sheet, err := douceuradapter.Parse(csstext)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, cssom.Dump(sheet))
	return err
}

func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	return data, args[0], nil
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" || output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func isHTML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
