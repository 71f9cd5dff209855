package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/wordwash/internal/logger"
	"github.com/jmylchreest/wordwash/pkg/cleaner/msoffice"
)

// detection is the classification report for one input.
type detection struct {
	Word  bool `json:"word"`
	Excel bool `json:"excel"`
}

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Classify HTML without cleaning it",
	Long: `Detect reports whether the input carries Microsoft Word or Excel
clipboard markers, without modifying anything.

The exit code is 0 when Office content is detected and 1 otherwise, so
the command works as a shell predicate:

  wordwash detect paste.html && wordwash clean paste.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().Bool("json", false, "print the classification as JSON")
}

func runDetect(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	raw, err := readInput(args)
	if err != nil {
		logError("reading input: %v", err)
		return err
	}

	d := detection{
		Word:  msoffice.IsWordContent(raw),
		Excel: msoffice.IsExcelContent(raw),
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "word: %v\nexcel: %v\n", d.Word, d.Excel)
	}

	if !d.Word && !d.Excel {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("no Office markers detected")
	}
	return nil
}
