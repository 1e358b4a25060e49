package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"pawlog/internal/cats/domain"
)

var addCmd = &cobra.Command{
	Use:   "add NAME BREED AGE",
	Short: "Register a single cat and persist it",
	Args:  cobra.ExactArgs(3),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	age, err := strconv.Atoi(args[2])
	if err != nil {
		return &domain.ValidationError{Field: "age", Reason: "must be an integer"}
	}

	registry := domain.NewRegistry()
	if _, err := registry.NewCat(args[0], args[1], age); err != nil {
		return err
	}
	return persistRegistry(cmd.Context(), registry)
}
