package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/osinfo"
	"github.com/dmitrymomot/osdetect/pkg/useragent"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var version, arch, ua string

	cmd := &cobra.Command{
		Use:   "classify NAME",
		Short: "Classify an operating system name",
		Long: `Classify an operating system from its raw name, with an optional version
and architecture. Words of NAME may be passed unquoted.

With --user-agent the name, version and architecture are taken from an HTTP
User-Agent string instead.`,
		Example: `  osdetect classify "Windows 10" --arch amd64
  osdetect classify Ubuntu 16.04 -o json
  osdetect classify Android --version 7.1
  osdetect classify --user-agent "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0)"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ua != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id := osinfo.Identity{Name: strings.Join(args, " "), Version: version, Architecture: arch}
			if ua != "" {
				parsed, err := useragent.Parse(ua)
				if err != nil {
					return fmt.Errorf("classify user agent: %w", err)
				}
				id = parsed
			}

			info := osinfo.ClassifyIdentity(id)
			opts.log.DebugContext(cmd.Context(), "classified", logger.OS(info))

			s := info.Summary()
			return opts.printer(cmd).print(s, []string{"field", "value"}, summaryRows(s))
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Raw version string")
	cmd.Flags().StringVar(&arch, "arch", "", "Raw architecture string, e.g. x86_64")
	cmd.Flags().StringVar(&ua, "user-agent", "", "HTTP User-Agent to classify instead of NAME")
	cmd.MarkFlagsMutuallyExclusive("user-agent", "version")
	cmd.MarkFlagsMutuallyExclusive("user-agent", "arch")
	return cmd
}
