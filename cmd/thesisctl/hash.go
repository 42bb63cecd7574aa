package main

import (
	"fmt"

	"github.com/SundayYogurt/thesis_service/internal/console"
	"github.com/SundayYogurt/thesis_service/internal/helper"
	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var plain string
			if len(args) == 1 {
				plain = args[0]
			} else {
				var err error
				p := console.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				if plain, err = p.Ask("Password", ""); err != nil {
					return err
				}
			}

			hash, err := helper.HashPassword(plain, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
