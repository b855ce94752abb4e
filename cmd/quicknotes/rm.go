package main

import (
	"fmt"

	"github.com/marcus/quicknotes/internal/notes"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, backing, err := openStore(logger)
		if err != nil {
			return err
		}
		defer backing.Close()

		if !store.Delete(args[0]) {
			return fmt.Errorf("%w: %s", notes.ErrNotFound, args[0])
		}
		if err := store.SaveErr(); err != nil {
			return fmt.Errorf("save notes: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
