package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addBody  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note and print its id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, backing, err := openStore(logger)
		if err != nil {
			return err
		}
		defer backing.Close()

		note, err := store.Create(addTitle, addBody)
		if err != nil {
			return err
		}
		if err := store.SaveErr(); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		fmt.Println(note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "Note body")
}
