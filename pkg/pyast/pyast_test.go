package pyast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, code string) *Module {
	t.Helper()
	m, err := Parse(context.Background(), code)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func TestParse_Clean(t *testing.T) {
	m := parse(t, `
import allure
from playwright.sync_api import Page, expect

def test_login(page):
    page.click("#submit")
    assert page.url == "/dashboard"
`)

	assert.False(t, m.HasSyntaxError())
	assert.Empty(t, m.SyntaxErrors())
}

func TestParse_SyntaxError(t *testing.T) {
	m := parse(t, "def test_broken(:\n    pass")

	assert.True(t, m.HasSyntaxError())
	assert.NotEmpty(t, m.SyntaxErrors())
}

func TestImports(t *testing.T) {
	m := parse(t, `
import os
import os.path
import json as j
from playwright.sync_api import Page
from subprocess import run
`)

	imports := m.Imports()
	assert.ElementsMatch(t, []string{"os", "json", "playwright", "subprocess"}, imports)
}

func TestCalls(t *testing.T) {
	m := parse(t, `
def test_thing(page):
    page.click("#btn")
    os.system("rm -rf /")
    eval("1+1")
`)

	var names []string
	for _, c := range m.Calls() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "page.click")
	assert.Contains(t, names, "os.system")
	assert.Contains(t, names, "eval")
}

func TestFunctionDefs(t *testing.T) {
	m := parse(t, `
def helper():
    pass

def test_one(page):
    pass

def test_two(page):
    pass
`)

	assert.Equal(t, []string{"helper", "test_one", "test_two"}, m.FunctionDefs())
}
