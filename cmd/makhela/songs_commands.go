package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"makhela/internal/review"
	"makhela/internal/store"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	songsCmd := &cobra.Command{
		Use:   "songs",
		Short: "Manage stored songs and their alignment runs",
	}

	songsCmd.AddCommand(newSongsListCommand(ctx))
	songsCmd.AddCommand(newSongsShowCommand(ctx))
	songsCmd.AddCommand(newSongsDeleteCommand(ctx))

	return songsCmd
}

func newSongsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				songs, err := st.ListSongs(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, songs)
				}
				if len(songs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No songs stored")
					return nil
				}
				rows := make([][]string, 0, len(songs))
				for _, song := range songs {
					rows = append(rows, []string{
						song.ID,
						song.Title,
						song.CreatedAt.Format(time.DateTime),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSongsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <song-id>",
		Short: "Show a song's chunks and alignment runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				song, err := st.GetSong(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				chunks, err := st.GetChunks(cmd.Context(), song.ID)
				if err != nil {
					return err
				}
				runs, err := st.ListRuns(cmd.Context(), song.ID)
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"song":   song,
						"chunks": chunks,
						"runs":   runs,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", song.Title, song.ID)
				for _, chunk := range chunks {
					fmt.Fprintf(out, "  [%d] %s: %d line(s)\n", chunk.Order+1, chunk.Label, chunk.NonEmptyLineCount())
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No alignment runs")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						run.CreatedAt.Format(time.DateTime),
						fmt.Sprintf("%.0f%%", run.Confidence*100),
						string(review.Classify(run.Confidence)),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Run", "Created", "Confidence", "Band"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSongsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <song-id>",
		Short: "Delete a song and its alignment runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if err := st.DeleteSong(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted song %s\n", args[0])
				return nil
			})
		},
	}
}
