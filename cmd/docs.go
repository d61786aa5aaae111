package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://just-the-docs.com/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildPage = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// docsCmd is for writing a Markdown page for each command
var docsCmd = &cobra.Command{
	Use:   "docs [dir]",
	Short: "Write Markdown documentation for every command",
	Long: `Write a Markdown page for every command, with the front matter
used by the just-the-docs Jekyll theme.`,
	Args:   cobra.ExactArgs(1),
	Hidden: true,
	RunE:   runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	metas := docMetas(rootCmd)
	prepender := func(filename string) string {
		return frontMatter(metas, filename)
	}

	rootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(rootCmd, dir, prepender, linkHandler); err != nil {
		return err
	}
	logger.Info("wrote command docs", "dir", dir, "pages", len(metas))
	return nil
}

// docMetas maps the base Markdown file name of each visible command to its page meta
func docMetas(c *cobra.Command) map[string]meta {
	metas := map[string]meta{}

	var walk func(c *cobra.Command, order int)
	walk = func(c *cobra.Command, order int) {
		m := meta{title: c.Name(), navOrder: order}

		var children []*cobra.Command
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
				children = append(children, sub)
			}
		}

		switch {
		case !c.HasParent():
			m.docType = root
		case !c.Parent().HasParent() && len(children) > 0:
			m.docType = childParent
			m.parent = c.Parent().Name()
		case !c.Parent().HasParent():
			m.docType = child
			m.parent = c.Parent().Name()
		default:
			m.docType = grandchild
			m.parent = c.Parent().Name()
			m.grandParent = c.Parent().Parent().Name()
		}
		metas[docBase(c)] = m

		for i, sub := range children {
			walk(sub, i)
		}
	}
	walk(c, 0)

	return metas
}

// docBase is the Markdown file name, without extension, that cobra/doc uses for a command
func docBase(c *cobra.Command) string {
	return strings.ReplaceAll(c.CommandPath(), " ", "_")
}

// frontMatter returns the YAML headings that are required by the just-the-docs theme
func frontMatter(metas map[string]meta, filename string) string {
	name := filepath.Base(filename)
	m, ok := metas[strings.TrimSuffix(name, path.Ext(name))]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentPage, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildPage, m.title, m.parent, m.grandParent, m.navOrder)
	}
	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == rootCmd.Name() {
		return "/"
	}
	return base
}
