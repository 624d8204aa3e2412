package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/photosphere/common-path-go/lib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitFatal    = 2
	ExitNoCommon = 3
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsage)
	}
}

var inputFile string
var inputLines bool

var rootCmd = &cobra.Command{
	Use:   "cpath [path...]",
	Short: "Find the longest common directory of a set of paths",
	Long:  "Resolve the longest common ancestor directory of the given paths and split every path around it. Paths are plain strings; nothing is read from the filesystem.",
	Example: heredoc.Doc(`
		# Common directory of two POSIX paths
		$ cpath --dialect posix /projects/myapp/src/one.js /projects/myapp/test/two.js

		# Windows paths from a YAML document with objects, as JSON
		$ cpath --dialect windows --input files.yaml --key filePath --format json

		# Newline-separated paths from stdin
		$ git ls-files | cpath --input - --lines --format tree
	`),
	Args:         requirePathsOrInput,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.cpath.yaml)")
	rootCmd.Flags().StringVar(&inputFile, "input", "", "Read paths from a YAML or JSON document (- for stdin)")
	rootCmd.Flags().BoolVar(&inputLines, "lines", false, "Treat --input as one path per line")
	rootCmd.Flags().String("dialect", "native", "Path dialect: native, posix, windows")
	rootCmd.Flags().String("format", "text", "Output format: text, tree, table, json, yaml")
	rootCmd.Flags().String("key", "", "Field holding the path string when the input contains objects")
	rootCmd.Flags().Bool("digest", false, "Print a digest of the result after it")
	rootCmd.Flags().Bool("quiet", false, "Suppress messages on stderr (for scripting)")
	rootCmd.Flags().Bool("log", false, "Write main and error logs to a temp dir")
	if err := bindFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func requirePathsOrInput(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && inputFile != "" {
		return fmt.Errorf("path arguments and --input are mutually exclusive, got %d arguments", len(args))
	}
	if inputLines && inputFile == "" {
		return errors.New("--lines requires --input")
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && inputFile == "" {
		cmd.SetOut(os.Stdout)
		return cmd.Usage()
	}
	cfg, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	dialect, err := lib.DialectByName(cfg.Dialect)
	if err != nil {
		return err
	}
	logger := lib.NopLogger()
	if cfg.Log {
		logger, err = lib.NewLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(ExitFatal)
		}
		if !cfg.Quiet {
			defer logger.PrintLogPaths()
		}
	}
	defer logger.Close()

	paths, key, err := loadPaths(args, inputFile, inputLines, cfg.Key)
	if err != nil {
		var inputErr *inputError
		if errors.As(err, &inputErr) {
			logger.Fatal(err)
		}
		logger.LogError(err)
		return err
	}
	logger.Logf("dialect %s, separator %q", cfg.Dialect, dialect.Separator())
	result, err := lib.FindCustom(dialect, paths, key...)
	if err != nil {
		logger.LogError(err)
		return err
	}
	logger.Logf("resolved %d paths, digest %s", len(result.ParsedPaths), result.Digest())
	if err := render(cfg, result, cmd.OutOrStdout(), dialect.Separator()); err != nil {
		logger.Fatal(err)
	}
	logNoCommon(result, dialect, logger)
	if code := exitCode(logger); code != ExitSuccess {
		if !cfg.Quiet {
			fmt.Fprintln(os.Stderr, "No common directory; check the error log for details.")
			logger.PrintLogPaths()
		}
		logger.Close()
		os.Exit(code)
	}
	return nil
}

func render(cfg settings, result *lib.CommonPath, w io.Writer, sep string) error {
	if err := lib.FormatResult(cfg.Format, result, sep, w); err != nil {
		return err
	}
	if cfg.Digest {
		fmt.Fprintf(w, "digest: %s\n", result.Digest())
	}
	return nil
}

// logNoCommon records one error per path whose root differs from the first
// path's root. Paths sharing a root that still have no common directory, such
// as \\?\UNC\ paths on different servers, are logged as a single error.
func logNoCommon(result *lib.CommonPath, dialect lib.Dialect, logger *lib.Logger) {
	if _, _, ok := result.Common(); ok || len(result.ParsedPaths) == 0 {
		return
	}
	first := result.ParsedPaths[0]
	firstRoot := dialect.Parse(first.Path).Root
	mismatches := 0
	for _, parts := range result.ParsedPaths[1:] {
		if root := dialect.Parse(parts.Path).Root; root != firstRoot {
			logger.LogError(fmt.Errorf("%s: root %q differs from %q of %s", parts.Path, root, firstRoot, first.Path))
			mismatches++
		}
	}
	if mismatches == 0 {
		logger.LogError(fmt.Errorf("no common directory under root %q", firstRoot))
	}
}

func exitCode(logger *lib.Logger) int {
	if logger.ErrorCount() > 0 {
		return ExitNoCommon
	}
	return ExitSuccess
}

// inputError marks failures to read the input, as opposed to invalid content.
type inputError struct{ err error }

func (e *inputError) Error() string { return "input: " + e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

// loadPaths collects the paths argument and key for the Find functions from
// positional args or an input file. flagKey, when set, overrides a document key.
func loadPaths(args []string, input string, lines bool, flagKey string) (any, []string, error) {
	var key []string
	if flagKey != "" {
		key = []string{flagKey}
	}
	if input == "" {
		return args, key, nil
	}
	reader, err := lib.OpenInput(input)
	if err != nil {
		return nil, nil, &inputError{err}
	}
	defer reader.Close()
	if lines {
		paths, err := lib.ReadPathList(reader)
		if err != nil {
			return nil, nil, &inputError{err}
		}
		return paths, key, nil
	}
	request, err := lib.ReadRequest(reader)
	if err != nil {
		return nil, nil, err
	}
	if key == nil {
		if key, err = lib.KeyArg(request.Key); err != nil {
			return nil, nil, err
		}
	}
	return request.Paths, key, nil
}
