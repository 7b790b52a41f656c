package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dexsamir/portfolio/internal/admin"
	"github.com/dexsamir/portfolio/internal/domain"
)

func (a *app) exportCmd() *cobra.Command {
	var typescript bool
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export projects and testimonials as JSON or TypeScript data files",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			snap, err := admin.Export(cmd.Context(), a.api, token)
			if err := a.check(err); err != nil {
				return err
			}
			if typescript {
				return writeTypeScript(cmd.OutOrStdout(), snap, output)
			}

			data, err := snap.MarshalIndent()
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().BoolVar(&typescript, "typescript", false, "emit TypeScript data modules instead of JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (JSON) or directory (TypeScript); stdout when empty")
	return cmd
}

// writeTypeScript prints every module, or writes them into dir.
func writeTypeScript(out io.Writer, snap domain.Snapshot, dir string) error {
	files, err := snap.TypeScriptModules()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if dir == "" {
			fmt.Fprintf(out, "// %s\n%s\n", name, files[name])
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
	}
	return nil
}

func (a *app) importCmd() *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate an exported document and optionally write it to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			snap, err := domain.ParseSnapshot(data)
			if err != nil {
				return err
			}

			token := ""
			if apply {
				if token, err = a.token(); err != nil {
					return err
				}
			}
			res, err := admin.Import(cmd.Context(), a.api, token, snap, apply, a.logger)
			if apply {
				a.InvalidateProjects(cmd.Context())
				a.InvalidateTestimonials(cmd.Context())
			}
			if err := a.check(err); err != nil {
				return err
			}

			verb := "Valid document with"
			if res.Applied {
				verb = "Imported"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d projects and %d testimonials (%d pending)\n",
				verb, res.Projects, res.Testimonials, res.Pending)
			if res.Failed > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d records could not be written\n", res.Failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "write the records to the backend")
	return cmd
}
