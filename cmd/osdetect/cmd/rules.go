package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [FAMILY]",
		Short: "List classification rules in match order",
		Long: `List the rules used to classify release names. Rules of a family are
tried top to bottom and the first match wins. FAMILY is one of windows, macos,
linux or android.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := osinfo.AllRules()
			if len(args) == 1 {
				family, err := osinfo.ParseFamily(args[0])
				if err != nil {
					return err
				}
				rules = osinfo.Rules(family)
				if rules == nil {
					rules = []osinfo.Rule{}
				}
			}

			rows := make([][]string, 0, len(rules))
			for i, r := range rules {
				newest := orDash(r.NewestVersion)
				if r.APILevel > 0 {
					newest = fmt.Sprintf("%s (API %d)", newest, r.APILevel)
				}
				rows = append(rows, []string{
					fmt.Sprint(i + 1),
					r.Family.String(),
					r.Subtype,
					supportCell(r.Support),
					newest,
					r.Pattern,
				})
			}
			return opts.printer(cmd).print(rules,
				[]string{"#", "family", "subtype", "support", "newest", "pattern"}, rows)
		},
	}
}
