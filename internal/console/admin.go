package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/internal/portal"
)

const adminHelp = "commands: r (refresh), d <row> (delete), q (quit)"

// RunAdmin loads reg, prints it and then serves commands until q or the
// end of input.
func RunAdmin(ctx context.Context, reg *portal.Registry, p *Prompter, out io.Writer) error {
	// a failed load has already been reported through the notifier
	_ = reg.Load(ctx)
	if err := WriteTable(out, reg.Items()); err != nil {
		return err
	}
	fmt.Fprintln(out, adminHelp)

	for {
		cmd, err := p.Ask(">", "")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil

		case "r", "refresh":
			_ = reg.Refresh(ctx)
			if err := WriteTable(out, reg.Items()); err != nil {
				return err
			}

		case "d", "delete":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: d <row>")
				continue
			}
			deleteRow(ctx, reg, p, out, fields[1])

		default:
			fmt.Fprintln(out, adminHelp)
		}
	}
}

func deleteRow(ctx context.Context, reg *portal.Registry, p *Prompter, out io.Writer, arg string) {
	items := reg.Items()
	row, err := strconv.Atoi(arg)
	if err != nil || row < 1 || row > len(items) {
		fmt.Fprintf(out, "no row %s\n", arg)
		return
	}
	item := items[row-1]

	deleted, err := reg.Delete(ctx, item.ID, func(it dto.ThesisResponse) bool {
		fmt.Fprintf(out, "%s (%s)\n", it.ThesisTitle, it.Name)
		return p.Confirm(portal.ConfirmPrompt)
	})
	if err != nil || !deleted {
		return
	}
	_ = WriteTable(out, reg.Items())
}
