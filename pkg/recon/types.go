// Package recon explores target pages and extracts the interactive
// structure the generator builds prompts from.
package recon

import (
	"context"
	"time"
)

// Element is one interactive page element with a stable selector.
type Element struct {
	Selector string `json:"selector"`
	Text     string `json:"text,omitempty"`
	Type     string `json:"type,omitempty"`
	Name     string `json:"name,omitempty"`
	Href     string `json:"href,omitempty"`
}

// Form groups the inputs under one form element.
type Form struct {
	Selector string    `json:"selector"`
	Action   string    `json:"action,omitempty"`
	Method   string    `json:"method,omitempty"`
	Inputs   []Element `json:"inputs,omitempty"`
}

// PageStructure is the extraction result for one page.
type PageStructure struct {
	URL     string    `json:"url"`
	Title   string    `json:"title,omitempty"`
	Buttons []Element `json:"buttons"`
	Inputs  []Element `json:"inputs"`
	Links   []Element `json:"links"`
	Forms   []Form    `json:"forms,omitempty"`
	// Errors records per-element extraction problems. Partial
	// extraction is a success; the errors just travel along.
	Errors []string `json:"errors,omitempty"`
}

// Explorer fetches and extracts the structure of a page.
type Explorer interface {
	ExplorePage(ctx context.Context, url string, timeout time.Duration) (*PageStructure, error)
}
