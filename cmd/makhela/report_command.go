package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"makhela/internal/review"
	"makhela/internal/store"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "report <run-id>",
		Short: "Quality report for a stored alignment run",
		Long: `Report summarizes a stored run chunk by chunk: confidence band, line
coverage, and how many lines carry word-level timings. Chunks in the low
band should be re-synced manually in the song editor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				run, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				results, err := st.GetRunResults(cmd.Context(), run.ID)
				if err != nil {
					return err
				}

				type chunkReport struct {
					store.ChunkResult
					Band          review.Band `json:"band"`
					WordDataLines int         `json:"wordDataLines"`
				}
				reports := make([]chunkReport, 0, len(results))
				for _, result := range results {
					wordLines := 0
					for _, words := range result.WordTimestamps {
						if len(words) > 0 {
							wordLines++
						}
					}
					reports = append(reports, chunkReport{
						ChunkResult:   result,
						Band:          review.Classify(result.Confidence),
						WordDataLines: wordLines,
					})
				}

				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"run":    run,
						"chunks": reports,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run %s: overall confidence %.0f%% (%s)\n",
					run.ID, run.Confidence*100, review.Classify(run.Confidence))

				rows := make([][]string, 0, len(reports))
				for _, report := range reports {
					rows = append(rows, []string{
						fmt.Sprintf("%d", report.ChunkOrder+1),
						report.Label,
						fmt.Sprintf("%d", len(report.Timestamps)),
						fmt.Sprintf("%d", report.WordDataLines),
						fmt.Sprintf("%.0f%%", report.Confidence*100),
						string(report.Band),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Section", "Lines", "Word Data", "Confidence", "Band"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
