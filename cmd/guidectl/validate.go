package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/storage/object"
	localstore "guide-backend/internal/shared/storage/object/local"
)

func newValidateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Schema- and reference-check a content directory",
		Long: `Loads careers.yaml, shoulder.yaml and resorts.yaml the way the server does and
reports the first problem found. Without --dir the built-in tables are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src object.Reader = content.EmbeddedSource{}
			label := "built-in content"
			if dir != "" {
				src = localstore.New(dir)
				label = dir
			}
			b, err := content.Load(cmd.Context(), src)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sectionStyle.Render("✅ "+label+" is valid"))
			fmt.Fprintf(cmd.OutOrStdout(), "types=%d interests=%d tests=%d exercises=%d symptoms=%d resorts=%d\n",
				len(b.Types), len(b.Interests), len(b.Tests), len(b.Exercises), len(b.Symptoms), len(b.Resorts))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory holding the content YAML files")
	return cmd
}
