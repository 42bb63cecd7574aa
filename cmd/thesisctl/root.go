package main

import (
	"time"

	"github.com/SundayYogurt/thesis_service/config"
	"github.com/SundayYogurt/thesis_service/internal/clients/thesisapi"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	apiURL        string
	adminUser     string
	adminPassword string
	timeout       time.Duration
}

func (g *globalFlags) client() *thesisapi.Client {
	opts := []thesisapi.Option{thesisapi.WithTimeout(g.timeout)}
	if g.adminUser != "" {
		opts = append(opts, thesisapi.WithAdminAuth(g.adminUser, g.adminPassword))
	}
	return thesisapi.New(g.apiURL, opts...)
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:          "thesisctl",
		Short:        "Submit and manage thesis records",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.apiURL, "api", config.GetEnv("THESIS_API_URL", "http://localhost:3000"), "thesis service base URL")
	pf.StringVar(&g.adminUser, "admin-user", config.GetEnv("THESIS_ADMIN_USER"), "basic auth user for admin routes")
	pf.StringVar(&g.adminPassword, "admin-password", config.GetEnv("THESIS_ADMIN_PASSWORD"), "basic auth password for admin routes")
	pf.DurationVar(&g.timeout, "timeout", 20*time.Second, "per request timeout")

	root.AddCommand(newSubmitCmd(g), newAdminCmd(g), newHashPasswordCmd())
	return root
}
