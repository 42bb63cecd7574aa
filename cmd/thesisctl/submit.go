package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SundayYogurt/thesis_service/internal/console"
	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/internal/portal"
	"github.com/spf13/cobra"
)

func newSubmitCmd(g *globalFlags) *cobra.Command {
	var in dto.SubmitThesisRequest
	var userType string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a thesis record",
		Long: "Submit a thesis record. Without --name and --title the command asks for every value;\n" +
			"with them it submits once using the flags only.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			form := portal.NewForm(g.client(), console.Printer{W: out})

			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("title") {
				p := console.NewPrompter(cmd.InOrStdin(), out)
				_, err := console.RunSubmit(cmd.Context(), form, p, out)
				return err
			}

			in.UserType = domain.UserType(strings.ToLower(userType))
			form.Fill(in)
			_, err := form.Submit(cmd.Context())

			var ve *dto.ValidationError
			if errors.As(err, &ve) {
				fmt.Fprintln(out, "Please fill in all required fields:")
				for _, msg := range form.Errors() {
					fmt.Fprintf(out, "  - %s\n", msg)
				}
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&userType, "user-type", string(domain.UserTypeLPU), "lpu or non-lpu")
	f.StringVar(&in.Name, "name", "", "student name")
	f.StringVar(&in.StudentNumber, "student-number", "", "student number (lpu)")
	f.StringVar(&in.ProgramDepartment, "program", "", "program/department (lpu)")
	f.StringVar(&in.SchoolName, "school", "", "school name (non-lpu)")
	f.StringVar(&in.ThesisTitle, "title", "", "thesis title")
	return cmd
}
