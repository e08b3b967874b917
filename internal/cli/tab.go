package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"tabshelf/internal/tabs/data"
	"tabshelf/internal/tabs/library"
	"tabshelf/internal/tabs/service"

	"github.com/spf13/cobra"
)

func newListCmd(sess func() *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List every tab, built-in first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := sess().svc
			tabs := svc.List()
			out := cmd.OutOrStdout()

			if asJSON {
				return writeJSON(out, tabs)
			}

			if len(tabs) == 0 {
				fmt.Fprintln(out, "No tabs found.")
				return nil
			}
			for _, t := range tabs {
				printTabLine(out, t, svc.IsBase(t.ID))
			}
			base, user := svc.Counts()
			fmt.Fprintf(out, "\n%d tab(s): %d built-in, %d imported\n", base+user, base, user)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tabs as a JSON array")
	return cmd
}

func newShowCmd(sess func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one tab",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := findTab(sess().svc, args[0])
			if err != nil {
				return err
			}
			printTab(cmd.OutOrStdout(), tab)
			return nil
		},
	}
}

func newImportCmd(sess func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file|dir|-]...",
		Short: "Import tabs from JSON files, tab sheets, or stdin",
		Long: `Import tabs into the library.

JSON input holds one tab object or an array of them. Markdown tab sheets
(.md) carry the metadata in YAML frontmatter. Directories are scanned for
both. With no arguments, or "-", JSON is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := sess().svc
			out := cmd.OutOrStdout()

			var results []service.FileResult
			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				results = []service.FileResult{{Source: "stdin", ImportResult: svc.Import(string(raw))}}
			} else {
				var err error
				results, err = svc.ImportFiles(args)
				if err != nil {
					return err
				}
			}

			added, failed := 0, false
			for _, r := range results {
				printImportResult(out, r)
				added += r.Added
				if len(r.Errors) > 0 || r.SaveErr != nil {
					failed = true
				}
			}

			if !sess().svc.Persistent() && added > 0 {
				fmt.Fprintln(out, "Note: no durable storage configured; imported tabs last for this session only.")
			}
			if added == 0 && failed {
				return errors.New("no tabs imported")
			}
			return nil
		},
	}
}

func newExportCmd(sess func() *session) *cobra.Command {
	var outDir string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a tab out as a markdown sheet (or JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := sess().svc
			if asJSON {
				tab, err := findTab(svc, args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), tab)
			}

			if _, err := findTab(svc, args[0]); err != nil {
				return err
			}
			path, err := svc.Export(args[0], outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "Directory to write the sheet into")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tab as JSON instead of writing a sheet")
	return cmd
}

// findTab looks id up and adds "did you mean" hints when it is missing.
func findTab(svc service.TabService, id string) (data.Tab, error) {
	tab, err := svc.Get(id)
	if err == nil {
		return tab, nil
	}
	if !errors.Is(err, service.ErrNotFound) {
		return data.Tab{}, err
	}
	if suggestions := svc.Suggest(id, 3); len(suggestions) > 0 {
		return data.Tab{}, fmt.Errorf("no tab found with ID: %s (did you mean %s?)", id, strings.Join(suggestions, ", "))
	}
	return data.Tab{}, fmt.Errorf("no tab found with ID: %s", id)
}

func printTabLine(w io.Writer, t data.Tab, builtin bool) {
	origin := "user"
	if builtin {
		origin = "base"
	}
	fmt.Fprintf(w, "[%s] %-24s %s\n", origin, t.ID, t.String())
	if len(t.Tags) > 0 {
		fmt.Fprintf(w, "       #%s\n", strings.Join(t.Tags, " #"))
	}
}

func printTab(w io.Writer, t data.Tab) {
	fmt.Fprintf(w, "%s\n%s\n\n", t.Title, strings.Repeat("=", len([]rune(t.Title))))
	fmt.Fprintf(w, "ID:         %s\n", t.ID)
	fmt.Fprintf(w, "Artist:     %s\n", t.Artist)
	fmt.Fprintf(w, "Instrument: %s\n", t.Instrument)
	fmt.Fprintf(w, "Tuning:     %s\n", t.Tuning)
	fmt.Fprintf(w, "Capo:       %s\n", t.Capo)
	fmt.Fprintf(w, "Difficulty: %s\n", t.Difficulty)
	if len(t.Tags) > 0 {
		fmt.Fprintf(w, "Tags:       %s\n", strings.Join(t.Tags, ", "))
	}
	if t.HasSource() {
		fmt.Fprintf(w, "Source:     %s\n", t.Source)
	}
	fmt.Fprintf(w, "\n%s\n", t.Content)
}

func printImportResult(w io.Writer, r service.FileResult) {
	switch r.Outcome {
	case library.OutcomeInvalidJSON, library.OutcomeInvalidShape:
		fmt.Fprintf(w, "%s: %s\n", r.Source, strings.Join(r.Errors, " "))
		return
	}

	fmt.Fprintf(w, "%s: added %d tab(s)\n", r.Source, r.Added)
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
	if r.SaveErr != nil {
		fmt.Fprintf(w, "  Warning: imported tabs were not saved: %v\n", r.SaveErr)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
