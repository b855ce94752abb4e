package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/marcus/quicknotes/internal/notes"
	"github.com/marcus/quicknotes/internal/render"
	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	listQuery string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, backing, err := openStore(logger)
		if err != nil {
			return err
		}
		defer backing.Close()

		filtered := notes.Filter(store.List(), listQuery)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(filtered)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, n := range filtered {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, n.Date, render.Truncate(render.PlainText(n.Title), 60))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only notes whose title or body contains this text")
}
