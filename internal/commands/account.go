package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/accounts"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	accountCmd.AddCommand(newAccountCreateCommand())
	accountCmd.AddCommand(newAccountListCommand())
	accountCmd.AddCommand(newAccountRmCommand())
	return accountCmd
}

func newAccountCreateCommand() *cobra.Command {
	var opts dataOpts

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			info, err := accounts.NewService(cfg.Data.Dir).Create(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s at %s\n", info.Name, info.Path)
			return nil
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newAccountListCommand() *cobra.Command {
	var opts dataOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			infos, err := accounts.NewService(cfg.Data.Dir).List()
			if err != nil {
				return err
			}

			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts.")
				return nil
			}
			for _, info := range infos {
				marker := ""
				if !info.Exists {
					marker = " (directory missing)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", info.Name, marker)
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newAccountRmCommand() *cobra.Command {
	var opts dataOpts
	var purge bool

	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}

			if err := accounts.NewService(cfg.Data.Dir).Delete(args[0], purge); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed account %s\n", args[0])
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&purge, "purge", false, "also delete the account's data directory")
	return cmd
}
