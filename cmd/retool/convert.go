package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-retool/internal/convert"
	"github.com/KirkDiggler/rpg-retool/internal/services/conversion"
)

var (
	convertKind   string
	convertInput  string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a document into records",
	Example: `  retool convert --kind feat --input data/feats.json --output feats.json
  retool convert --kind race --input data/races.json --output races.json --workers 8`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertKind, "kind", "", "converter kind: dummy, feat, race")
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input document path")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output path")
	_ = convertCmd.MarkFlagRequired("kind")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	kind, err := convert.ParseKind(convertKind)
	if err != nil {
		return err
	}

	svc, err := conversion.New(&conversion.Config{
		Logger:  logger,
		Workers: cfg.Workers,
	})
	if err != nil {
		return err
	}

	out, err := svc.Convert(cmd.Context(), &conversion.ConvertInput{
		Kind:       kind,
		InputPath:  convertInput,
		OutputPath: convertOutput,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d %s records to %s\n", out.Count, kind, convertOutput)
	return err
}
