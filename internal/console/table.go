package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/pkg/utils"
)

const (
	dateLayout  = "Jan 2, 2006 3:04 PM"
	absentValue = "-"

	MsgNoSubmissions = "No submissions found"
)

// WriteTable prints items in the order given, one numbered row each.
func WriteTable(w io.Writer, items []dto.ThesisResponse) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, MsgNoSubmissions)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tUser Type\tName\tStudent Number\tProgram/School\tThesis Title")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			it.CreatedAt.Local().Format(dateLayout),
			userTypeLabel(it.UserType),
			it.Name,
			orAbsent(it.StudentNumber),
			programOrSchool(it),
			it.ThesisTitle,
		)
	}
	return tw.Flush()
}

func userTypeLabel(t domain.UserType) string {
	switch t {
	case domain.UserTypeLPU:
		return "LPU"
	case domain.UserTypeNonLPU:
		return "Non-LPU"
	}
	return string(t)
}

func programOrSchool(it dto.ThesisResponse) string {
	if it.UserType == domain.UserTypeLPU {
		return orAbsent(it.ProgramDepartment)
	}
	return orAbsent(it.SchoolName)
}

func orAbsent(s *string) string {
	if v := utils.Deref(s); v != "" {
		return v
	}
	return absentValue
}
