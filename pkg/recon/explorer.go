package recon

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/qaforge/qaforge/pkg/config"
	"github.com/qaforge/qaforge/pkg/models"
)

// HTTPExplorer fetches pages over plain HTTP and extracts structure
// from the served markup. Pages that only render client-side yield a
// sparse structure; the generator copes with that.
type HTTPExplorer struct {
	httpc       *http.Client
	maxElements int
	logger      *slog.Logger
}

// NewExplorer creates the default HTTP explorer.
func NewExplorer(cfg config.ReconConfig, logger *slog.Logger) *HTTPExplorer {
	maxElements := cfg.MaxElements
	if maxElements <= 0 {
		maxElements = 50
	}
	return &HTTPExplorer{
		httpc:       &http.Client{},
		maxElements: maxElements,
		logger:      logger.With("component", "recon"),
	}
}

// ExplorePage fetches url and extracts its interactive structure.
// Failures are transient: the orchestrator owns the retry budget.
func (e *HTTPExplorer) ExplorePage(ctx context.Context, url string, timeout time.Duration) (*PageStructure, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, models.NewPermanent(models.CodeInternal, fmt.Errorf("invalid page url: %w", err))
	}
	req.Header.Set("User-Agent", "qaforge-recon/1.0")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return nil, models.NewTransient(models.CodeReconTimeout, fmt.Errorf("page fetch failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewTransient(models.CodeReconTimeout,
			fmt.Errorf("page fetch returned %d", resp.StatusCode))
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, models.NewTransient(models.CodeReconTimeout, fmt.Errorf("page parse failed: %w", err))
	}

	structure := e.extract(url, doc)
	e.logger.Info("page explored",
		"url", url,
		"buttons", len(structure.Buttons),
		"inputs", len(structure.Inputs),
		"links", len(structure.Links))
	return structure, nil
}

func (e *HTTPExplorer) extract(url string, doc *html.Node) *PageStructure {
	s := &PageStructure{
		URL:     url,
		Buttons: []Element{},
		Inputs:  []Element{},
		Links:   []Element{},
	}

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if s.Title == "" {
					s.Title = strings.TrimSpace(textOf(n))
				}
			case "button":
				e.addButton(s, n, textOf(n))
			case "input":
				inputType := attr(n, "type")
				if inputType == "submit" || inputType == "button" {
					e.addButton(s, n, attr(n, "value"))
				} else {
					e.addInput(s, n, inputType)
				}
			case "textarea", "select":
				e.addInput(s, n, n.Data)
			case "a":
				if href := attr(n, "href"); href != "" {
					e.addLink(s, n, href)
				}
			case "form":
				e.addForm(s, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return s
}

func (e *HTTPExplorer) addButton(s *PageStructure, n *html.Node, text string) {
	if len(s.Buttons) >= e.maxElements {
		return
	}
	sel := selectorFor(n)
	if sel == "" {
		s.Errors = append(s.Errors, fmt.Sprintf("button %q has no stable selector", strings.TrimSpace(text)))
		return
	}
	s.Buttons = append(s.Buttons, Element{Selector: sel, Text: strings.TrimSpace(text)})
}

func (e *HTTPExplorer) addInput(s *PageStructure, n *html.Node, inputType string) {
	if len(s.Inputs) >= e.maxElements {
		return
	}
	sel := selectorFor(n)
	if sel == "" {
		s.Errors = append(s.Errors, fmt.Sprintf("input %q has no stable selector", attr(n, "name")))
		return
	}
	if inputType == "" {
		inputType = "text"
	}
	s.Inputs = append(s.Inputs, Element{
		Selector: sel,
		Type:     inputType,
		Name:     attr(n, "name"),
	})
}

func (e *HTTPExplorer) addLink(s *PageStructure, n *html.Node, href string) {
	if len(s.Links) >= e.maxElements {
		return
	}
	sel := selectorFor(n)
	if sel == "" {
		// Links fall back to their href; they are still actionable.
		sel = fmt.Sprintf(`a[href=%q]`, href)
	}
	s.Links = append(s.Links, Element{
		Selector: sel,
		Text:     strings.TrimSpace(textOf(n)),
		Href:     href,
	})
}

func (e *HTTPExplorer) addForm(s *PageStructure, n *html.Node) {
	sel := selectorFor(n)
	if sel == "" {
		sel = "form"
	}
	form := Form{
		Selector: sel,
		Action:   attr(n, "action"),
		Method:   strings.ToUpper(attr(n, "method")),
	}

	var visit func(c *html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == "input" {
			if fieldSel := selectorFor(c); fieldSel != "" {
				form.Inputs = append(form.Inputs, Element{
					Selector: fieldSel,
					Type:     attr(c, "type"),
					Name:     attr(c, "name"),
				})
			}
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			visit(cc)
		}
	}
	visit(n)

	s.Forms = append(s.Forms, form)
}

// selectorFor prefers data-testid, then id, then the first class.
func selectorFor(n *html.Node) string {
	if v := attr(n, "data-testid"); v != "" {
		return fmt.Sprintf(`[data-testid=%q]`, v)
	}
	if v := attr(n, "id"); v != "" {
		return "#" + v
	}
	if v := attr(n, "class"); v != "" {
		first := strings.Fields(v)
		if len(first) > 0 {
			return "." + first[0]
		}
	}
	return ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var visit func(c *html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			visit(cc)
		}
	}
	visit(n)
	return sb.String()
}
