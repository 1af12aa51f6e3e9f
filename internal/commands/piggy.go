package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/piggybank"
)

func newPiggyCommand() *cobra.Command {
	piggyCmd := &cobra.Command{
		Use:   "piggy",
		Short: "Manage piggy banks (sub-accounts)",
	}
	piggyCmd.AddCommand(newPiggyCreateCommand())
	piggyCmd.AddCommand(newPiggyListCommand())
	piggyCmd.AddCommand(newPiggyRmCommand())
	return piggyCmd
}

func newPiggyCreateCommand() *cobra.Command {
	var opts dataOpts
	var account string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new piggy bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			if account == "" {
				account = cfg.Defaults.Account
			}
			if account == "" {
				return fmt.Errorf("account required: pass --account or set defaults.account")
			}

			info, err := piggybank.NewService(cfg.Data.Dir, account).Create(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created piggy bank %s at %s\n", info.Name, info.Path)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&account, "account", "", "account name")
	return cmd
}

func newPiggyListCommand() *cobra.Command {
	var opts dataOpts
	var account string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List piggy banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			if account == "" {
				account = cfg.Defaults.Account
			}
			if account == "" {
				return fmt.Errorf("account required: pass --account or set defaults.account")
			}

			names, err := piggybank.NewService(cfg.Data.Dir, account).List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No piggy banks.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&account, "account", "", "account name")
	return cmd
}

func newPiggyRmCommand() *cobra.Command {
	var opts dataOpts
	var account string
	var purge bool

	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a piggy bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			if account == "" {
				account = cfg.Defaults.Account
			}
			if account == "" {
				return fmt.Errorf("account required: pass --account or set defaults.account")
			}

			if err := piggybank.NewService(cfg.Data.Dir, account).Delete(args[0], purge); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed piggy bank %s\n", args[0])
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&account, "account", "", "account name")
	cmd.Flags().BoolVar(&purge, "purge", false, "also delete the piggy bank's data")
	return cmd
}
