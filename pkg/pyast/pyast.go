// Package pyast parses generated Python test code with tree-sitter and
// exposes the handful of views the validator needs: syntax errors,
// imports, calls and function definitions.
package pyast

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Module is a parsed Python source file. Close must be called to
// release the underlying tree.
type Module struct {
	tree   *sitter.Tree
	source []byte
}

// SyntaxError is a parse error location.
type SyntaxError struct {
	Line    int // 1-based
	Message string
}

// Call is a function or method invocation.
type Call struct {
	Name string // dotted callee as written, e.g. "os.system"
	Line int
}

// Parse parses code as Python source.
func Parse(ctx context.Context, code string) (*Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	source := []byte(code)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse python source: %w", err)
	}

	return &Module{tree: tree, source: source}, nil
}

// Close releases the parse tree.
func (m *Module) Close() {
	if m.tree != nil {
		m.tree.Close()
		m.tree = nil
	}
}

// HasSyntaxError reports whether the source failed to parse cleanly.
func (m *Module) HasSyntaxError() bool {
	return m.tree.RootNode().HasError()
}

// SyntaxErrors returns the locations of parse errors.
func (m *Module) SyntaxErrors() []SyntaxError {
	var errs []SyntaxError
	m.walk(m.tree.RootNode(), func(n *sitter.Node) bool {
		if n.IsError() {
			errs = append(errs, SyntaxError{
				Line:    int(n.StartPoint().Row) + 1,
				Message: "invalid syntax",
			})
			return false
		}
		if n.IsMissing() {
			errs = append(errs, SyntaxError{
				Line:    int(n.StartPoint().Row) + 1,
				Message: fmt.Sprintf("missing %s", n.Type()),
			})
			return false
		}
		return true
	})
	return errs
}

// Imports returns the top-level module name of every import in the
// source: "import os.path" and "from os import path" both yield "os".
func (m *Module) Imports() []string {
	var imports []string
	seen := make(map[string]bool)
	add := func(name string) {
		root := strings.SplitN(name, ".", 2)[0]
		if root != "" && !seen[root] {
			seen[root] = true
			imports = append(imports, root)
		}
	}

	m.walk(m.tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_statement":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				switch child.Type() {
				case "dotted_name":
					add(child.Content(m.source))
				case "aliased_import":
					if name := child.ChildByFieldName("name"); name != nil {
						add(name.Content(m.source))
					}
				}
			}
			return false
		case "import_from_statement":
			if mod := n.ChildByFieldName("module_name"); mod != nil {
				add(mod.Content(m.source))
			}
			return false
		}
		return true
	})
	return imports
}

// Calls returns every invocation in the source with its callee name as
// written, including attribute chains.
func (m *Module) Calls() []Call {
	var calls []Call
	m.walk(m.tree.RootNode(), func(n *sitter.Node) bool {
		if n.Type() == "call" {
			if fn := n.ChildByFieldName("function"); fn != nil {
				calls = append(calls, Call{
					Name: fn.Content(m.source),
					Line: int(n.StartPoint().Row) + 1,
				})
			}
		}
		return true
	})
	return calls
}

// FunctionDefs returns the names of all function definitions.
func (m *Module) FunctionDefs() []string {
	var defs []string
	m.walk(m.tree.RootNode(), func(n *sitter.Node) bool {
		if n.Type() == "function_definition" {
			if name := n.ChildByFieldName("name"); name != nil {
				defs = append(defs, name.Content(m.source))
			}
		}
		return true
	})
	return defs
}

// walk visits nodes depth-first. fn returning false prunes the subtree.
func (m *Module) walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		m.walk(n.Child(i), fn)
	}
}
