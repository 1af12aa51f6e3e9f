package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/category"
)

func newCategoryCommand() *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the category registry",
	}
	categoryCmd.AddCommand(newCategoryListCommand())
	categoryCmd.AddCommand(newCategoryMutateCommand("add <name>", "Add a category", func(reg *category.Registry, args []string) error {
		return reg.Add(args[0])
	}, cobra.ExactArgs(1)))
	categoryCmd.AddCommand(newCategoryMutateCommand("rename <old> <new>", "Rename a category", func(reg *category.Registry, args []string) error {
		return reg.Rename(args[0], args[1])
	}, cobra.ExactArgs(2)))
	categoryCmd.AddCommand(newCategoryMutateCommand("rm <name>", "Remove a category", func(reg *category.Registry, args []string) error {
		return reg.Remove(args[0])
	}, cobra.ExactArgs(1)))
	return categoryCmd
}

func newCategoryListCommand() *cobra.Command {
	var opts dataOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			reg, err := category.Load(opts.categoriesPath(cfg))
			if err != nil {
				return err
			}
			for _, name := range reg.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newCategoryMutateCommand(use, short string, mutate func(*category.Registry, []string) error, args cobra.PositionalArgs) *cobra.Command {
	var opts dataOpts

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			path := opts.categoriesPath(cfg)
			reg, err := category.Load(path)
			if err != nil {
				return err
			}
			if err := mutate(reg, cmdArgs); err != nil {
				return err
			}
			return category.Save(path, reg)
		},
	}

	opts.addFlags(cmd)
	return cmd
}
