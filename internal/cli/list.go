package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rjdinis/uncpath/internal/types"
	"github.com/rjdinis/uncpath/pkg/utils"
)

type outputFormat string

const (
	outputPlain outputFormat = "plain"
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func outputFormatNames() []string {
	return []string{string(outputPlain), string(outputTable), string(outputJSON)}
}

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(v string) error {
	switch f := outputFormat(strings.ToLower(v)); f {
	case outputPlain, outputTable, outputJSON:
		*o = f
		return nil
	}
	return fmt.Errorf("must be one of %s", strings.Join(outputFormatNames(), ", "))
}

func (o *outputFormat) Type() string { return "format" }

const maxColumnWidth = 48

func printMappings(w io.Writer, ms []types.Mapping, format outputFormat) error {
	switch format {
	case outputJSON:
		if ms == nil {
			ms = []types.Mapping{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ms)

	case outputTable:
		headers := []string{"Host", "Share", "Mount Point", "Source"}
		rows := make([][]string, 0, len(ms)+1)
		rows = append(rows, headers)
		for _, m := range ms {
			rows = append(rows, []string{m.Host, m.Share, m.MountPoint, m.Source.String()})
		}

		tbl := utils.NewTable(w, utils.ColumnWidths(maxColumnWidth, rows...)...)
		tbl.Header(headers...)
		for _, r := range rows[1:] {
			tbl.Row(r...)
		}
		tbl.Footer()
		return nil

	default:
		fmt.Fprintln(w, "Configured mappings:")
		if len(ms) == 0 {
			fmt.Fprintln(w, "  (none)")
		}
		for _, m := range ms {
			fmt.Fprintf(w, "  \\\\%s\\%s -> %s\n", m.Host, m.Share, m.MountPoint)
		}
		return nil
	}
}
