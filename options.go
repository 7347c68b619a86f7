package svgicon

import (
	"runtime"

	"github.com/npillmayer/svgicon/svg"
)

// Default option values.
const (
	DefaultPath         = "./svgs"
	DefaultFunctionName = "svgicon"
)

// Minimum and maximum number of concurrent icon renderers, if not set
// explicitly by Options.Workers.
const (
	minWorkerCount int = 1
	maxWorkerCount int = 8
)

// Options configure a transformation. Zero values are replaced by defaults,
// see DefaultOptions.
type Options struct {
	Path         string   // directory containing the icon files
	Prefix       string   // file name prefix of icon files
	FunctionName string   // marker function to scan for
	StripStyles  bool     // remove embedded <style> blocks from icons
	ColorTags    []string // tags of colorable elements
	Workers      int      // number of concurrent icon renderers; 0 = number of CPUs
}

// DefaultOptions returns the default configuration: icons are read from
// "./svgs", without file name prefix, the marker function is "svgicon",
// styles are kept, and path and polygon elements are colorable.
func DefaultOptions() Options {
	return Options{
		Path:         DefaultPath,
		FunctionName: DefaultFunctionName,
		ColorTags:    append([]string(nil), svg.DefaultColorTags...),
	}
}

func (opts Options) withDefaults() Options {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	if opts.FunctionName == "" {
		opts.FunctionName = DefaultFunctionName
	}
	if opts.ColorTags == nil {
		opts.ColorTags = append([]string(nil), svg.DefaultColorTags...)
	}
	return opts
}

func (opts Options) workers() int {
	if opts.Workers > 0 {
		return opts.Workers
	}
	n := runtime.NumCPU()
	if n > maxWorkerCount {
		n = maxWorkerCount
	} else if n < minWorkerCount {
		n = minWorkerCount
	}
	return n
}
