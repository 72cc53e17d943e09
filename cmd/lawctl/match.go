package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"virtual-lawyer/extract"
	"virtual-lawyer/matcher"
	"virtual-lawyer/models"
	"virtual-lawyer/repository"

	"github.com/spf13/cobra"
)

var (
	matchFromDB bool
	matchPDF    string
	matchJSON   bool
	matchTop    int
)

var matchCmd = &cobra.Command{
	Use:   "match [text...]",
	Short: "Rank law sections for a case description",
	Long: `Scores every law against the description and prints the ranked sections.
Uses the seed data unless --db is given. Reads stdin when no text is passed.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchFromDB, "db", false, "Match against the laws table instead of the seed data")
	matchCmd.Flags().StringVar(&matchPDF, "pdf", "", "PDF whose text is appended to the description")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().IntVarP(&matchTop, "top", "n", 5, "Number of results to print (0 for all)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	text := strings.Join(args, " ")
	if text == "" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(raw)
	}

	if matchPDF != "" {
		data, err := os.ReadFile(matchPDF)
		if err != nil {
			return fmt.Errorf("failed to read pdf: %w", err)
		}
		if extracted := extract.NewPDFExtractor(logger).Extract(ctx, data); extracted != "" {
			text += "\n" + extracted
		}
	}

	var laws []models.Law
	if matchFromDB {
		pool, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		laws, err = repository.NewLawRepository(pool).ListAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load laws: %w", err)
		}
	} else {
		data, err := loadSeed()
		if err != nil {
			return err
		}
		laws = data.Laws()
	}

	results := matcher.Match(text, laws)
	if matchTop > 0 && len(results) > matchTop {
		results = results[:matchTop]
	}
	return printMatches(cmd.OutOrStdout(), results)
}

func printMatches(w io.Writer, results []models.MatchResult) error {
	if matchJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	fmt.Fprintf(w, "Best Match: Section %s\n", results[0].Section)
	for _, r := range results {
		fmt.Fprintf(w, "%-8s %3d  %s [%s]\n", r.Section, r.Score, r.Title, strings.Join(r.MatchedTokens, ","))
	}
	return nil
}
