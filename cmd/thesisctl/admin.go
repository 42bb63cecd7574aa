package main

import (
	"github.com/SundayYogurt/thesis_service/internal/console"
	"github.com/SundayYogurt/thesis_service/internal/portal"
	"github.com/spf13/cobra"
)

func newAdminCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "List and delete submissions",
		Long:  "Shows every submission, newest first. Commands: r (refresh), d <row> (delete), q (quit).",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := portal.NewRegistry(g.client(), console.Printer{W: out})
			return console.RunAdmin(cmd.Context(), reg, console.NewPrompter(cmd.InOrStdin(), out), out)
		},
	}
}
