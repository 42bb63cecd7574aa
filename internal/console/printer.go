// Package console renders the portal components on a terminal: the
// submission prompts, the admin table and the notifications they raise.
package console

import (
	"fmt"
	"io"

	"github.com/SundayYogurt/thesis_service/internal/portal"
)

// Printer shows notifications as single lines.
type Printer struct {
	W io.Writer
}

func (p Printer) Notify(n portal.Notification) {
	if n.Variant == portal.VariantDestructive {
		fmt.Fprintf(p.W, "!! %s: %s\n", n.Title, n.Description)
		return
	}
	fmt.Fprintf(p.W, "%s %s\n", n.Title, n.Description)
}
