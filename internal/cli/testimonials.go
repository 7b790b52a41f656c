package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dexsamir/portfolio/internal/domain"
	testimonialservice "github.com/dexsamir/portfolio/internal/testimonials/service"
)

func (a *app) testimonialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "testimonials",
		Aliases: []string{"testimonial"},
		Short:   "List and moderate testimonials",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List published testimonials",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.api.ListTestimonials(cmd.Context())
			if err != nil {
				return err
			}
			return printTestimonials(cmd.OutOrStdout(), domain.PublicTestimonials(all), "No testimonials yet.")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pending",
		Short: "List testimonials waiting for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			pending, err := a.api.ListPendingTestimonials(cmd.Context(), token)
			if err := a.check(err); err != nil {
				return err
			}
			return printTestimonials(cmd.OutOrStdout(), pending, "No testimonials waiting for review.")
		},
	})

	svc := func() *testimonialservice.TestimonialService {
		return testimonialservice.NewTestimonialService(a.api, a)
	}
	cmd.AddCommand(
		a.moderationCmd("approve", "Approve a pending testimonial", "Approved", func(ctx context.Context, token, id string) error {
			return svc().Approve(ctx, token, id)
		}),
		a.moderationCmd("deny", "Deny a pending testimonial", "Denied", func(ctx context.Context, token, id string) error {
			return svc().Deny(ctx, token, id)
		}),
		a.moderationCmd("delete", "Delete a testimonial", "Deleted", func(ctx context.Context, token, id string) error {
			return svc().Delete(ctx, token, id)
		}),
	)
	return cmd
}

func (a *app) moderationCmd(use, short, done string, fn func(ctx context.Context, token, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			if err := a.check(fn(cmd.Context(), token, args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s testimonial %s\n", done, args[0])
			return nil
		},
	}
}

func printTestimonials(out io.Writer, list []domain.Testimonial, empty string) error {
	if len(list) == 0 {
		fmt.Fprintln(out, empty)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tRATING\tSTATUS")
	for _, t := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/5\t%s\n", t.ID, t.Name, t.Company, t.Rating, t.Status.Label())
	}
	return w.Flush()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
