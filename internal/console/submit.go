package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/internal/portal"
)

// RunSubmit walks the user through the form until one submission is stored
// or the user gives up. Values are kept between attempts.
func RunSubmit(ctx context.Context, form *portal.Form, p *Prompter, out io.Writer) (*dto.ThesisResponse, error) {
	for {
		if err := askFields(form, p); err != nil {
			return nil, err
		}

		saved, err := form.Submit(ctx)
		if err == nil {
			return saved, nil
		}

		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintln(out, "Please fill in all required fields:")
			writeFieldErrors(out, ve.Fields)
			continue
		}

		if !p.Confirm("Try again?") {
			return nil, err
		}
	}
}

func askFields(form *portal.Form, p *Prompter) error {
	v := form.Fields()

	raw, err := p.Ask("User type (lpu/non-lpu)", string(v.UserType))
	if err != nil {
		return err
	}
	v.UserType = domain.UserType(strings.ToLower(raw))

	if v.Name, err = p.Ask("Name", v.Name); err != nil {
		return err
	}

	switch v.UserType {
	case domain.UserTypeLPU:
		if v.StudentNumber, err = p.Ask("Student Number", v.StudentNumber); err != nil {
			return err
		}
		if v.ProgramDepartment, err = p.Ask("Program/Department", v.ProgramDepartment); err != nil {
			return err
		}
	case domain.UserTypeNonLPU:
		if v.SchoolName, err = p.Ask("School Name", v.SchoolName); err != nil {
			return err
		}
	}

	if v.ThesisTitle, err = p.Ask("Thesis Title", v.ThesisTitle); err != nil {
		return err
	}

	form.Fill(v)
	return nil
}

func writeFieldErrors(w io.Writer, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  - %s\n", fields[k])
	}
}
