package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags] <content-dir> <output-dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static site (home page, blog, projects) from a content directory.")
	fmt.Fprintln(w, "The output directory is removed and regenerated on every run.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Directory with config.toml, blog/posts/ and projects/")
	fmt.Fprintln(w, "  output-dir     Directory to write the site to")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto)")
	fmt.Fprintln(w, "      --asset-path <dir>    Override templates/*.html and styles/styles.css")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page progress and timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content config (config.toml, config.yaml or config.yml):")
	fmt.Fprintln(w, "  portrait_path           Image copied to the site root (required)")
	fmt.Fprintln(w, "  analytics_tracking_id   Analytics id embedded in every page (required)")
	fmt.Fprintln(w, "  code_theme              Code highlighting theme (default: monokai)")
	fmt.Fprintln(w, "  date_format             Display date: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                          or a preset: iso, european, us, long (default: iso)")
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "md2site %s\n", Version)
}
