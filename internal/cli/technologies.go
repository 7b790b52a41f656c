package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dexsamir/portfolio/internal/domain"
)

func (a *app) technologiesCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "technologies",
		Aliases: []string{"tech"},
		Short:   "Show the technology tags",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List technologies",
		RunE: func(cmd *cobra.Command, args []string) error {
			techs, err := a.api.ListTechnologies(cmd.Context())
			if err != nil {
				return err
			}
			if !all {
				techs = domain.ActiveTechnologies(techs)
			}
			sort.Slice(techs, func(i, j int) bool {
				return strings.ToLower(techs[i].Name) < strings.ToLower(techs[j].Name)
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDELETED")
			for _, t := range techs {
				fmt.Fprintf(w, "%s\t%s\t%t\n", t.ID, t.Name, t.IsDeleted)
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&all, "all", false, "include soft-deleted technologies")
	cmd.AddCommand(list)
	return cmd
}
