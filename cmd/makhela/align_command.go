package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"makhela/internal/align"
	"makhela/internal/logging"
	"makhela/internal/lyrics"
	"makhela/internal/review"
	"makhela/internal/services/transcriber"
	"makhela/internal/store"
	"makhela/internal/transcript"
)

type alignOutput struct {
	Title   string           `json:"title"`
	SongID  string           `json:"songId,omitempty"`
	RunID   string           `json:"runId,omitempty"`
	Results []chunkOutput    `json:"results"`
	Review  []review.Finding `json:"review,omitempty"`
}

type chunkOutput struct {
	align.Result
	Label string      `json:"label"`
	Band  review.Band `json:"band"`
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var (
		lyricsPath     string
		transcriptPath string
		audioPath      string
		title          string
		jsonOut        bool
		save           bool
	)

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align song lyrics to a speech-to-text transcript",
		Long: `Align computes a timestamp for every lyric line from the transcript of a
recording. Lines the matcher cannot place are interpolated and lower the
chunk's confidence; inspect low-confidence chunks before trusting them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(lyricsPath) == "" {
				return errors.New("--lyrics is required")
			}
			if (transcriptPath == "") == (audioPath == "") {
				return errors.New("exactly one of --transcript or --audio is required")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			chunks, err := lyrics.LoadFile(lyricsPath)
			if err != nil {
				return err
			}
			if len(chunks) == 0 {
				return fmt.Errorf("no lyric chunks found in %s", lyricsPath)
			}

			var tr transcript.Transcript
			if transcriptPath != "" {
				tr, err = transcript.LoadWhisperX(transcriptPath)
				if err != nil {
					return fmt.Errorf("load transcript: %w", err)
				}
			} else {
				engine := transcriber.NewWhisperXFiles(cfg.Paths.TranscriptDir)
				tr, err = engine.Transcribe(cmd.Context(), audioPath)
				if err != nil {
					return err
				}
			}

			if strings.TrimSpace(title) == "" {
				title = lyrics.DeriveTitle(lyricsPath)
			}

			aligner := align.New(cfg.AlignOptions(), logger)
			results := aligner.Align(chunks, tr)
			findings := review.Inspect(chunks, results, tr)

			logger.Info("alignment complete",
				logging.String(logging.FieldComponent, "align"),
				logging.String("title", title),
				logging.Int("chunks", len(results)),
				logging.Int("interpolated_lines", len(findings)))

			output := alignOutput{Title: title, Review: findings}
			byID := chunkByID(chunks)
			for _, result := range results {
				output.Results = append(output.Results, chunkOutput{
					Result: result,
					Label:  byID[result.ChunkID].Label,
					Band:   review.Classify(result.Confidence),
				})
			}

			if save {
				err := ctx.withStore(func(st *store.Store) error {
					song, _, err := st.SaveSong(cmd.Context(), title, chunks)
					if err != nil {
						return err
					}
					saveCtx := logging.WithSongID(cmd.Context(), song.ID)
					run, err := st.SaveRun(saveCtx, song.ID, results)
					if err != nil {
						return err
					}
					saveCtx = logging.WithRunID(saveCtx, run.ID)
					logging.WithContext(saveCtx, logger).Info("alignment run saved",
						logging.String(logging.FieldComponent, "store"),
						logging.Float64("confidence", run.Confidence))
					output.SongID = song.ID
					output.RunID = run.ID
					return nil
				})
				if err != nil {
					return err
				}
			}

			if jsonOut {
				return writeJSON(cmd, output)
			}
			renderAlignOutput(cmd, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&lyricsPath, "lyrics", "", "Lyric text file (blank-line-separated sections)")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "WhisperX JSON transcript file")
	cmd.Flags().StringVar(&audioPath, "audio", "", "Audio file whose transcript is resolved from the transcript directory")
	cmd.Flags().StringVar(&title, "title", "", "Song title (derived from the lyrics filename when empty)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the song and alignment run")

	return cmd
}

func chunkByID(chunks []lyrics.Chunk) map[string]lyrics.Chunk {
	byID := make(map[string]lyrics.Chunk, len(chunks))
	for _, chunk := range chunks {
		byID[chunk.ID] = chunk
	}
	return byID
}

func renderAlignOutput(cmd *cobra.Command, output alignOutput) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Aligned %q: %d chunk(s)\n", output.Title, len(output.Results))

	rows := make([][]string, 0, len(output.Results))
	for i, chunk := range output.Results {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			chunk.Label,
			fmt.Sprintf("%d", len(chunk.Timestamps)),
			formatMillis(firstOrZero(chunk.Timestamps)),
			fmt.Sprintf("%.0f%%", chunk.Confidence*100),
			string(chunk.Band),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Section", "Lines", "Starts", "Confidence", "Band"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))

	if len(output.Review) > 0 {
		fmt.Fprintf(out, "\n%d line(s) could not be matched and were interpolated:\n", len(output.Review))
		reviewRows := make([][]string, 0, len(output.Review))
		for _, f := range output.Review {
			reviewRows = append(reviewRows, []string{
				formatMillis(f.TimestampMs),
				f.Line,
				f.NearestSegment,
				fmt.Sprintf("%d", f.EditDistance),
				fmt.Sprintf("%.2f", f.JaroWinkler),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"At", "Line", "Nearest Segment", "Edit Dist", "Jaro-Winkler"},
			reviewRows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
		))
	}

	if output.RunID != "" {
		fmt.Fprintf(out, "\nSaved run %s (song %s)\n", output.RunID, output.SongID)
	}
}

func firstOrZero(values []int) int {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func formatMillis(ms int) string {
	seconds := ms / 1000
	return fmt.Sprintf("%d:%02d.%03d", seconds/60, seconds%60, ms%1000)
}
