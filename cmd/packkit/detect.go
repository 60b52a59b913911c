package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/efeecllk/game-insights-sub001/detect"
	"github.com/efeecllk/game-insights-sub001/pack"
)

var detectHint string

var detectCmd = &cobra.Command{
	Use:   "detect <columns-file>",
	Short: "Detect the industry of a dataset from its columns",
	Long: `Detect reads column observations and classifies them against the
built-in industry packs. The input is either a CSV file (only the header
row is read; each header becomes a column meaning with confidence 1.0)
or a JSON/YAML array of {column, meaning, confidence} records produced
by upstream schema analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		columns, err := readColumns(args[0])
		if err != nil {
			return err
		}

		reg, cleanup, err := newRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		detector := detect.New(reg,
			detect.WithMinConfidence(cfg.Detector.MinConfidence),
			detect.WithAmbiguityThreshold(cfg.Detector.AmbiguityThreshold),
			detect.WithMaxAlternatives(cfg.Detector.MaxAlternatives),
		)

		result := detector.DetectWithSubCategory(columns, pack.Industry(detectHint))

		fmt.Printf("industry: %s (confidence %.2f)\n", result.Primary.Industry, result.Primary.Confidence)
		if result.Primary.SubCategory != "" {
			fmt.Printf("sub-category: %s\n", result.Primary.SubCategory)
		}
		if result.IsAmbiguous {
			fmt.Println("note: classification is ambiguous; inspect alternatives")
		}
		for _, reason := range result.Primary.Reasons {
			fmt.Println("  -", reason)
		}
		for _, alt := range result.Alternatives {
			fmt.Printf("alternative: %s (confidence %.2f)\n", alt.Industry, alt.Confidence)
		}
		for _, dst := range result.DetectedSemanticTypes {
			fmt.Printf("  column %q -> %s (%.2f)\n", dst.Column, dst.Type, dst.Confidence)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().StringVar(&detectHint, "industry", "", "industry hint for sub-category refinement")
}

// readColumns loads detection input from CSV headers or a JSON/YAML
// column-meaning array
func readColumns(path string) ([]pack.ColumnMeaning, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVHeader(path)
	case ".json", ".yaml", ".yml":
		return readColumnMeanings(path)
	default:
		return nil, fmt.Errorf("unsupported columns file %q (want .csv, .json, or .yaml)", path)
	}
}

// readCSVHeader turns a CSV header row into full-confidence column
// meanings; upstream schema analysis is bypassed, so each header stands
// for its own meaning
func readCSVHeader(path string) ([]pack.ColumnMeaning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("%s: reading header row: %w", path, err)
	}

	columns := make([]pack.ColumnMeaning, 0, len(header))
	for _, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		columns = append(columns, pack.ColumnMeaning{
			Column:     name,
			Meaning:    name,
			Confidence: 1.0,
		})
	}
	return columns, nil
}

func readColumnMeanings(path string) ([]pack.ColumnMeaning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var columns []pack.ColumnMeaning
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		err = json.Unmarshal(data, &columns)
	} else {
		err = yaml.Unmarshal(data, &columns)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: decoding column meanings: %w", path, err)
	}
	return columns, nil
}
