package ui

import (
	"path/filepath"
	"sort"
	"strings"

	"syntaxtest/internal/domain"
)

// Formatter formats run summaries and case listings
type Formatter struct {
	printer *Printer
}

// NewFormatter creates a new Formatter
func NewFormatter(printer *Printer) *Formatter {
	return &Formatter{printer: printer}
}

// PrintSummary prints the final "Summary: P/R tests successful." line
func (f *Formatter) PrintSummary(result *domain.TraversalResult) {
	f.printer.Println()
	f.printer.Printf("Summary: ")
	role := Success
	if !result.AllPassed() {
		role = Failure
	}
	f.printer.Styled(role, "%d/%d", result.Passed, result.Run)
	f.printer.Println(" tests successful.")
}

// PrintProblems prints the cases that did not pass as a tree grouped by directory
func (f *Formatter) PrintProblems(problems []domain.CaseProblem) {
	if len(problems) == 0 {
		return
	}

	f.printer.Println()
	f.printer.Styled(Failure, "✗ %d case(s) did not pass:", len(problems))
	f.printer.Println()

	root := &TreeNode{Children: make(map[string]*TreeNode)}
	for _, p := range problems {
		parts := strings.Split(filepath.ToSlash(p.Name), "/")
		current := root
		for i, part := range parts {
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
		}
		current.Kind = p.Kind
	}

	f.printTreeNode(root, "")
}

// TreeNode represents a node in the case tree
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	IsFile   bool
	Kind     string
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string) {
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLast := i == len(keys)-1

		connector := "├── "
		nextPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			nextPrefix = prefix + "    "
		}

		f.printer.Printf("%s%s", prefix, connector)
		if child.IsFile {
			f.printer.Styled(Warning, "%s", child.Name)
			f.printer.Printf(" ")
			f.printer.Styled(Failure, "[%s]", child.Kind)
		} else {
			f.printer.Styled(Source, "%s", child.Name)
		}
		f.printer.Println()

		f.printTreeNode(child, nextPrefix)
	}
}

// PrintCaseList prints discovered case names in traversal order. Names in
// failed (from the last run) are marked with [F].
func (f *Formatter) PrintCaseList(names []string, failed map[string]struct{}) {
	f.printer.Styled(Success, "Found %d test case(s):", len(names))
	f.printer.Println()
	f.printer.Println()

	for i, name := range names {
		connector := "├── "
		if i == len(names)-1 {
			connector = "└── "
		}
		f.printer.Printf("%s", connector)
		f.printer.Styled(Source, "%s", name)
		if _, ok := failed[name]; ok {
			f.printer.Printf(" ")
			f.printer.Styled(Failure, "[F]")
		}
		f.printer.Println()
	}
}
