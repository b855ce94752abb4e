package main

import (
	"fmt"

	"github.com/marcus/quicknotes/internal/notes"
	"github.com/spf13/cobra"
)

var (
	editTitle string
	editBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title and/or body",
	Long:  "Only the flags given are changed; the note keeps its position and gets today's date.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		store, backing, err := openStore(logger)
		if err != nil {
			return err
		}
		defer backing.Close()

		current, ok := store.FindByID(id)
		if !ok {
			return fmt.Errorf("%w: %s", notes.ErrNotFound, id)
		}

		title, body := current.Title, current.Body
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("body") {
			body = editBody
		}

		if _, err := store.Update(id, title, body); err != nil {
			return err
		}
		if err := store.SaveErr(); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editBody, "body", "b", "", "New body")
}
