package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/wordwash/internal/config"
	"github.com/jmylchreest/wordwash/internal/logger"
	"github.com/jmylchreest/wordwash/internal/output"
	"github.com/jmylchreest/wordwash/pkg/cleaner/msoffice"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean Word/Excel clipboard HTML",
	Long: `Clean reads HTML from a file or stdin, detects whether it came from
Microsoft Word or Excel, and rewrites it into minimal markup.

Content that does not classify as Office HTML passes through unchanged
unless --force is given.

Examples:
  wordwash clean paste.html
  cat paste.html | wordwash clean --format json
  wordwash clean paste.html --preset structure-only -o out.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "html", "output format: html, json, jsonl, yaml")
	flags.Bool("pretty", false, "pretty-print the output")
	flags.Bool("stats-only", false, "print cleaning stats instead of content")

	// Pipeline settings
	flags.String("preset", "default", "pipeline preset: default, structure-only")
	flags.Bool("force", false, "run the pipeline even when the source is not Office HTML")
	flags.Bool("keep-local-images", false, "keep images with document-local references")

	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("pretty", flags.Lookup("pretty"))
	_ = viper.BindPFlag("preset", flags.Lookup("preset"))
	_ = viper.BindPFlag("force", flags.Lookup("force"))
	_ = viper.BindPFlag("keep_local_images", flags.Lookup("keep-local-images"))
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	settings, err := config.Load()
	if err != nil {
		logError("%v", err)
		return err
	}

	raw, err := readInput(args)
	if err != nil {
		logError("reading input: %v", err)
		return err
	}
	logger.Debug("input read", "bytes", len(raw))

	word := msoffice.IsWordContent(raw)
	excel := msoffice.IsExcelContent(raw)
	logger.Debug("source classified", "word", word, "excel", excel)

	if !word && !excel && !settings.Force {
		logInfo("no Office markers found, passing through (use --force to clean anyway)")
		return writeCleaned(cmd, settings, &msoffice.Result{Content: raw})
	}

	c := msoffice.New(settings.CleanerConfig())
	result := c.CleanWithStats(raw)

	for _, w := range result.Warnings {
		logger.Warn("cleaning warning", "phase", w.Phase, "message", w.Message, "context", w.Context)
	}
	logger.Debug("cleaning complete",
		"input_bytes", result.Stats.InputBytes,
		"output_bytes", result.Stats.OutputBytes,
		"headings", result.Stats.HeadingsRebuilt,
		"lists", result.Stats.ListsRebuilt)

	statsOnly, _ := cmd.Flags().GetBool("stats-only")
	if statsOnly {
		fmt.Fprint(cmd.OutOrStdout(), result.Stats.String())
		return nil
	}

	return writeCleaned(cmd, settings, result)
}

// writeCleaned serializes the result in the requested format. The html
// format emits only the cleaned fragment; the structured formats carry the
// full result including classification, stats and warnings.
func writeCleaned(cmd *cobra.Command, settings *config.Settings, result *msoffice.Result) error {
	dst := cmd.OutOrStdout()
	if settings.Output != "" {
		f, err := os.Create(settings.Output)
		if err != nil {
			logError("creating output file: %v", err)
			return err
		}
		defer f.Close()
		dst = f
	}

	w, err := output.NewWriter(dst, output.Format(settings.Format), output.WithPretty(settings.Pretty))
	if err != nil {
		logError("%v", err)
		return err
	}

	var payload any = result
	if output.Format(settings.Format) == output.FormatHTML {
		payload = result.Content
	}
	if err := w.Write(payload); err != nil {
		logError("writing output: %v", err)
		return err
	}
	return w.Close()
}

// readInput returns the content of the file argument, or stdin when no
// argument was given.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
