package main

import (
	"github.com/spf13/cobra"

	"github.com/talkdeck/talkdeck-push-server/db"
	"github.com/talkdeck/talkdeck-push-server/repo/categoryrepo"
)

func newCategoryCommand(ctx *commandContext) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the category store",
	}

	var name string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category, the running server announces it to new_category_alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			repo := categoryrepo.New()
			a := newApp(conf, db.New(), repo)
			if err = a.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				_ = a.Close(cmd.Context())
			}()
			category, err := repo.Create(cmd.Context(), name)
			if err != nil {
				return err
			}
			out := renderTable([]string{"Id", "Name"}, [][]string{{category.Id, category.Name}})
			_, err = cmd.OutOrStdout().Write([]byte(out + "\n"))
			return err
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Category name")
	_ = createCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(createCmd)
	return categoryCmd
}
