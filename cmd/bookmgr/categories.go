package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Output formats for categories.
const (
	outputText = "text"
	outputJSON = "json"
)

func categoriesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the book categories",
		Long:  `Print the categories a book can be filed under, in display order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCategories(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")

	return cmd
}

func printCategories(w io.Writer, format string) error {
	names := lo.Map(model.Categories, func(c model.Category, _ int) string {
		return c.String()
	})

	switch format {
	case outputText:
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return fmt.Errorf("failed to write categories: %w", err)
			}
		}
		return nil
	case outputJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(names)
		if err != nil {
			return fmt.Errorf("failed to encode categories: %w", err)
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write categories: %w", err)
		}
		return nil
	default:
		return common.NewUserError(fmt.Sprintf("unsupported output format %q (use text or json)", format), common.ErrInvalidConfig)
	}
}
