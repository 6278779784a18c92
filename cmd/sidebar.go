package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imnaval/webnotes/internal/lang"
	"github.com/imnaval/webnotes/internal/sidebar"
)

var (
	sidebarLang string
	sidebarJSON bool
)

var sidebarCmd = &cobra.Command{
	Use:   "sidebar",
	Short: "Print the populated sidebar for one language",
	Long:  `Populates the sidebar exactly as the site does for a page request and prints it as a tree or as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := parseLangFlag(sidebarLang)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctrl, err := newController(cfg, newLogger())
		if err != nil {
			return err
		}

		sb := ctrl.Build(cmd.Context(), l)
		acc := sidebar.NewAccordion(sb)
		out := cmd.OutOrStdout()
		if sidebarJSON {
			return sidebar.JSONRenderer{Indent: true}.Render(out, sb, acc)
		}
		printTree(out, sb)
		return nil
	},
}

// printTree writes a plain-text outline of both sidebar lists.
func printTree(w io.Writer, sb *sidebar.Sidebar) {
	fmt.Fprintf(w, "Language: %s\n", sb.Language)
	sections := []struct {
		title string
		nodes []sidebar.Node
	}{
		{"Topics", sb.Topics},
		{"Interview Questions", sb.Interview},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "\n%s\n", s.title)
		for _, n := range s.nodes {
			fmt.Fprintf(w, "  %s  %s\n", n.Label, n.Href)
			for _, c := range n.Children {
				fmt.Fprintf(w, "    - %s  %s\n", c.Label, c.Href)
			}
		}
	}
	if failed := sb.Failures(); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, r := range failed {
			names = append(names, r.File)
		}
		fmt.Fprintf(w, "\nFailed to load: %s\n", strings.Join(names, ", "))
	}
}

func init() {
	sidebarCmd.Flags().StringVar(&sidebarLang, "lang", string(lang.Default), "language to populate (english or hinglish)")
	sidebarCmd.Flags().BoolVar(&sidebarJSON, "json", false, "print the sidebar as JSON")
	rootCmd.AddCommand(sidebarCmd)
}
