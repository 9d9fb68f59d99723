package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// Format selects how command results are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat accepts table, json and yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want table, json or yaml)", ErrUnsupportedFormat, s)
}

// printer writes v as JSON or YAML, or header and rows as a table.
type printer struct {
	out    io.Writer
	format Format
}

func (p printer) print(v any, header []string, rows [][]string) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func supportCell(s osinfo.Support) string {
	switch s {
	case osinfo.SupportSupported:
		return color.GreenString(s.String())
	case osinfo.SupportDeprecated:
		return color.YellowString(s.String())
	case osinfo.SupportUnsupported:
		return color.RedString(s.String())
	default:
		return color.New(color.Faint).Sprint(s.String())
	}
}

func summaryRows(s osinfo.Summary) [][]string {
	rows := [][]string{
		{"family", s.Family.String()},
		{"subtype", orDash(s.Subtype)},
		{"support", supportCell(s.Support)},
		{"newest version", orDash(s.NewestVersion)},
	}
	if s.APILevel > 0 {
		rows = append(rows, []string{"api level", fmt.Sprint(s.APILevel)})
	}
	return append(rows,
		[]string{"raw name", s.RawName},
		[]string{"raw version", orDash(s.RawVersion)},
		[]string{"newer than known", yesNo(s.NewerThanKnown)},
		[]string{"architecture", s.Architecture.String()},
		[]string{"desktop", yesNo(s.Desktop)},
		[]string{"display", s.Display},
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
