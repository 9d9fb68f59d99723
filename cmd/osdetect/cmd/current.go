package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/osinfo"
	"github.com/dmitrymomot/osdetect/pkg/platform"
)

// probeReport is one row of `current --probe`.
type probeReport struct {
	Source   string          `json:"source" yaml:"source"`
	Identity osinfo.Identity `json:"identity" yaml:"identity"`
	Result   *osinfo.Summary `json:"result,omitempty" yaml:"result,omitempty"`
	Error    string          `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCurrentCmd(opts *rootOptions) *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Classify the operating system this process runs on",
		Long: `Identify and classify the current host. OS_NAME, OS_VERSION and OS_ARCH
replace what the host reports. With --probe every identification source is
queried and reported side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if probe {
				return runProbe(cmd, opts)
			}

			info, err := osinfo.Current(cmd.Context(), platform.NewSourceFromConfig(opts.cfg.Platform))
			if err != nil {
				return err
			}
			opts.log.DebugContext(cmd.Context(), "current platform", logger.OS(info))

			s := info.Summary()
			return opts.printer(cmd).print(s, []string{"field", "value"}, summaryRows(s))
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Query every identification source and show each result")
	return cmd
}

func runProbe(cmd *cobra.Command, opts *rootOptions) error {
	sources := platform.DefaultSources()
	if id, ok := opts.cfg.Platform.Override(); ok {
		sources = append([]platform.NamedSource{platform.Named("config", platform.StaticSource(id))}, sources...)
	}

	results := platform.Probe(cmd.Context(), sources...)
	reports := make([]probeReport, 0, len(results))
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		report := probeReport{Source: res.Source, Identity: res.Identity}
		if res.Err != nil {
			opts.log.WarnContext(cmd.Context(), "probe failed", logger.Source(res.Source), logger.Error(res.Err))
			report.Error = res.Err.Error()
			rows = append(rows, []string{res.Source, "-", "-", "-", "-", "-", report.Error})
			reports = append(reports, report)
			continue
		}

		s := res.OS.Summary()
		report.Result = &s
		rows = append(rows, []string{
			res.Source,
			res.Identity.Name,
			orDash(res.Identity.Version),
			orDash(res.Identity.Architecture),
			s.Family.String(),
			orDash(s.Subtype),
			"",
		})
		reports = append(reports, report)
	}

	return opts.printer(cmd).print(reports,
		[]string{"source", "name", "version", "arch", "family", "subtype", "error"}, rows)
}
