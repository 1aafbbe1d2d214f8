package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/srwiley/oksvg"
)

// Exit codes. exitTransform also covers runs where some sizes failed.
const (
	exitOK         = 0
	exitValidation = 1
	exitTransform  = 2
)

const (
	desktopAlias  = "desktop"
	desktopFolder = "Desktop"
	svgExtension  = "svg"
)

type options struct {
	outputDir   string
	inputFile   string
	png         bool
	jobs        int
	strict      bool
	interactive bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaults := options{png: true, jobs: DefaultJobs}
	opts, fset, err := parseArgs(args, defaults, stdout)
	if err != nil {
		return exitValidation
	}

	var p *prompter
	if opts.interactive {
		p = newPrompter(stdin, stdout)
	}

	var outputDir string
	for {
		outputDir, err = opts.validate()
		if err == nil {
			break
		}

		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, err)
		if p == nil {
			var verr *ValidationError
			if errors.As(err, &verr) && verr.Usage {
				fmt.Fprintln(stdout)
				fset.SetOutput(stdout)
				fset.Usage()
			}
			return exitValidation
		}

		line, more, perr := p.next()
		if !more {
			if perr != nil {
				fmt.Fprintln(stdout, perr)
			}
			return exitValidation
		}
		if perr != nil {
			fmt.Fprintf(stdout, "Could not read that line: %v\n", perr)
			continue
		}

		retry := *opts
		retry.outputDir, retry.inputFile = "", ""
		next, _, perr := parseArgs(line, retry, stdout)
		if perr != nil {
			continue
		}
		opts = next
	}

	fmt.Fprintf(stdout, "\nNow outputting the %s and %s to %s\n\n", IOS.Label(), Android.Label(), outputDir)

	mode := oksvg.IgnoreErrorMode
	if opts.strict {
		mode = oksvg.StrictErrorMode
	}
	exporter := NewExporter(WithErrorMode(mode))
	logger := log.New(stderr, "", log.LstdFlags)

	code := exitOK
	for _, platform := range Platforms {
		t := NewTransformer(platform, opts.inputFile, outputDir, exporter,
			WithLogger(logger), WithJobs(opts.jobs))

		report, err := t.Transform(ctx, opts.png)
		if err != nil {
			logger.Printf("%s transformation failed: %v", platform, err)
			fmt.Fprintf(stdout, "Some unknown programmatic error meant that no %s were created :(\n", platform.Label())
			code = exitTransform

			var perr *ParseError
			if errors.As(err, &perr) {
				break
			}
			continue
		}
		printSummary(stdout, report)
		if !report.OK() {
			code = exitTransform
		}
	}

	if ctx.Err() != nil {
		code = exitTransform
	}
	return code
}

func parseArgs(args []string, defaults options, out io.Writer) (*options, *flag.FlagSet, error) {
	opts := defaults
	fset := flag.NewFlagSet("sizedpng", flag.ContinueOnError)
	fset.SetOutput(out)

	outputUsage := `Directory to put the iOS and Android images into ("desktop" for ~/Desktop)`
	inputUsage := "Path to the input SVG file"
	fset.StringVar(&opts.outputDir, "o", defaults.outputDir, outputUsage)
	fset.StringVar(&opts.outputDir, "outputDirectory", defaults.outputDir, outputUsage)
	fset.StringVar(&opts.inputFile, "i", defaults.inputFile, inputUsage)
	fset.StringVar(&opts.inputFile, "inputFile", defaults.inputFile, inputUsage)
	fset.BoolVar(&opts.png, "png", defaults.png, "Also render a PNG next to every resized SVG")
	fset.IntVar(&opts.jobs, "jobs", defaults.jobs, "Number of sizes exported at once per platform")
	fset.BoolVar(&opts.strict, "strict", defaults.strict, "Fail rasterization on SVG elements the renderer does not support")
	fset.BoolVar(&opts.interactive, "interactive", defaults.interactive, "Prompt for missing or invalid arguments on stdin")

	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "Usage: sizedpng -o <directory|desktop> -i <file.svg>\n")
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return nil, fset, err
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}
	return &opts, fset, nil
}

// validate checks the required flags and the input file and returns the
// resolved output directory.
func (o *options) validate() (string, error) {
	if o.outputDir == "" {
		return "", &ValidationError{
			Msg:   "Please specify an output directory using the option -o. For example append '-o desktop' or the full path.",
			Usage: true,
		}
	}
	if o.inputFile == "" {
		return "", &ValidationError{
			Msg:   "Please specify the input svg file using the option -i.",
			Usage: true,
		}
	}

	outputDir, err := resolveOutputDir(o.outputDir)
	if err != nil {
		return "", &ValidationError{Msg: err.Error()}
	}

	if err := checkInputFile(o.inputFile); err != nil {
		return "", err
	}
	return outputDir, nil
}

func resolveOutputDir(dir string) (string, error) {
	if dir != desktopAlias {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve the desktop directory: %w", err)
	}
	return filepath.Join(home, desktopFolder), nil
}

// checkInputFile requires an existing regular file whose extension is
// exactly "svg".
func checkInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &ValidationError{Msg: "We cant find a dot svg file @ " + path}
	}
	if _, ext := splitExt(filepath.Base(path)); ext != svgExtension {
		return &ValidationError{Msg: "We cant find a dot svg file @ " + path}
	}
	return nil
}

func printSummary(w io.Writer, r *Report) {
	total := len(r.Entries)
	switch ok := r.Succeeded(); {
	case ok == total:
		fmt.Fprintf(w, "%s have been created at %s\n", r.Platform.Label(), r.OutputDir)
	case ok == 0:
		fmt.Fprintf(w, "No %s were created at %s, all %d sizes failed:\n", r.Platform.Label(), r.OutputDir, total)
	default:
		fmt.Fprintf(w, "%d of %d %s have been created at %s, %d failed:\n", ok, total, r.Platform.Label(), r.OutputDir, total-ok)
	}
	for _, e := range r.Entries {
		if e.Err != nil {
			fmt.Fprintf(w, "  %s (%dx%d): %v\n", e.Spec.Label, e.Spec.Width, e.Spec.Height, e.Err)
		}
	}
}
