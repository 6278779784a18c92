package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/imnaval/webnotes/internal/config"
	"github.com/imnaval/webnotes/internal/content"
	"github.com/imnaval/webnotes/internal/lang"
	"github.com/imnaval/webnotes/internal/progress"
	"github.com/imnaval/webnotes/internal/sidebar"
	"github.com/imnaval/webnotes/internal/source"
)

var (
	checkLang   string
	checkStrict bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every catalog entry loads and its subtopics match",
	Long: `Fetches every file referenced by the catalog in each language and reports
files that fail to load, pre-declared subtopics that differ from the file's
headings, and markdown files in the content directory that no entry references.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		languages := []lang.Language{lang.English, lang.Hinglish}
		if checkLang != "" {
			l, err := parseLangFlag(checkLang)
			if err != nil {
				return err
			}
			languages = []lang.Language{l}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reporter := progress.NewReporter(os.Stderr)
		var mu sync.Mutex
		observe := func(r sidebar.Report) {
			mu.Lock()
			defer mu.Unlock()
			reporter.Increment(r.File)
		}

		ctrl, err := newController(cfg, newLogger(), sidebar.WithObserver(observe))
		if err != nil {
			return err
		}

		catalog := ctrl.Catalog()
		total := (catalog.Notes.Len() + catalog.Interview.Len()) * len(languages)
		reporter.Start(total, "Checking")

		sidebars, err := buildAll(cmd.Context(), ctrl, languages)
		reporter.Finish()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		problems := 0
		for _, sb := range sidebars {
			problems += printFindings(out, sb)
		}

		if cfg.BaseURL == "" {
			orphans, err := orphanFiles(cfg, catalog)
			if err != nil {
				return err
			}
			for _, f := range orphans {
				fmt.Fprintf(out, "orphan: %s is not referenced by the catalog\n", f)
			}
			problems += len(orphans)
		}

		if problems == 0 {
			fmt.Fprintln(out, "All entries loaded and match their headings.")
			return nil
		}
		fmt.Fprintf(out, "%d problem(s) found\n", problems)
		if checkStrict {
			return fmt.Errorf("check failed with %d problem(s)", problems)
		}
		return nil
	},
}

// buildAll populates one sidebar per language concurrently, keeping the
// order of languages in the result.
func buildAll(ctx context.Context, ctrl *sidebar.Controller, languages []lang.Language) ([]*sidebar.Sidebar, error) {
	out := make([]*sidebar.Sidebar, len(languages))
	g, ctx := errgroup.WithContext(ctx)
	for i, l := range languages {
		g.Go(func() error {
			out[i] = ctrl.Build(ctx, l)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building sidebars: %w", err)
	}
	return out, nil
}

// printFindings writes load failures and subtopic drift for one sidebar and
// returns how many it found.
func printFindings(w io.Writer, sb *sidebar.Sidebar) int {
	n := 0
	for _, r := range sb.Failures() {
		fmt.Fprintf(w, "[%s] failed: %s %q (%s): %v\n", sb.Language, r.Kind, r.ID, r.File, r.Err)
		n++
	}
	for _, d := range sb.Divergence() {
		fmt.Fprintf(w, "[%s] drift: %s %q (%s)\n", sb.Language, d.Kind, d.ID, d.File)
		if len(d.NotInFile) > 0 {
			fmt.Fprintf(w, "    declared but not in file: %s\n", strings.Join(d.NotInFile, ", "))
		}
		if len(d.NotDeclared) > 0 {
			fmt.Fprintf(w, "    in file but not declared: %s\n", strings.Join(d.NotDeclared, ", "))
		}
		n++
	}
	return n
}

// orphanFiles lists markdown files under the content directory that are
// neither the home page nor referenced by any entry in any language.
func orphanFiles(cfg *config.Config, catalog *content.Catalog) ([]string, error) {
	files, err := source.MarkdownFiles(os.DirFS(cfg.ContentDir), cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	referenced := map[string]bool{cfg.HomeFile: true}
	for _, l := range []lang.Language{lang.English, lang.Hinglish} {
		rewritten := catalog.WithLanguage(l)
		for _, idx := range []*content.Index{rewritten.Notes, rewritten.Interview} {
			for _, e := range idx.Entries() {
				referenced[e.File] = true
			}
		}
	}

	var orphans []string
	for _, f := range files {
		if !referenced[f] {
			orphans = append(orphans, f)
		}
	}
	return orphans, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkLang, "lang", "", "check a single language (default: both)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit non-zero when problems are found")
	rootCmd.AddCommand(checkCmd)
}
