package render

import (
	"fmt"
	"html"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/goliatone/go-mform/pkg/model"
)

var debugDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumpFields(w io.Writer, fields []model.Field) error {
	if _, err := fmt.Fprintf(w, "<pre>%s</pre>\n", html.EscapeString(debugDumper.Sdump(fields))); err != nil {
		return fmt.Errorf("render: write debug dump: %w", err)
	}
	return nil
}
