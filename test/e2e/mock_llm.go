package e2e

import (
	"context"
	"crypto/sha256"
	"sync"
	"time"

	"github.com/qaforge/qaforge/pkg/llm"
	"github.com/qaforge/qaforge/pkg/recon"
)

// LLMScriptEntry defines one scripted chat response.
type LLMScriptEntry struct {
	Text  string // response content
	Err   error  // returned instead of a response
	Block bool   // block until the call context is cancelled
}

// ScriptedLLM satisfies the pipeline's LLM interface with scripted chat
// responses consumed in order. The last entry repeats once the script is
// exhausted. Embeddings are deterministic per text.
type ScriptedLLM struct {
	mu      sync.Mutex
	script  []LLMScriptEntry
	index   int
	calls   int
	blocked chan struct{} // closed once a Block entry starts waiting
}

// NewScriptedLLM creates a ScriptedLLM with the given script.
func NewScriptedLLM(script ...LLMScriptEntry) *ScriptedLLM {
	return &ScriptedLLM{script: script, blocked: make(chan struct{})}
}

// Rescript replaces the remaining script, e.g. between a failed run and a
// resume.
func (s *ScriptedLLM) Rescript(script ...LLMScriptEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = script
	s.index = 0
}

// Calls returns how many chat calls were made.
func (s *ScriptedLLM) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Blocked is closed when a blocking entry has started waiting.
func (s *ScriptedLLM) Blocked() <-chan struct{} {
	return s.blocked
}

func (s *ScriptedLLM) Call(ctx context.Context, _ llm.CallInput) (*llm.Response, error) {
	s.mu.Lock()
	s.calls++
	var entry LLMScriptEntry
	if len(s.script) > 0 {
		if s.index >= len(s.script) {
			entry = s.script[len(s.script)-1]
		} else {
			entry = s.script[s.index]
			s.index++
		}
	}
	blocked := s.blocked
	s.mu.Unlock()

	if entry.Block {
		select {
		case <-blocked:
		default:
			close(blocked)
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if entry.Err != nil {
		return nil, entry.Err
	}
	return &llm.Response{
		Content: entry.Text,
		Model:   "gpt-4o",
		Usage:   llm.Usage{Prompt: 150, Completion: 300, Total: 450},
	}, nil
}

func (s *ScriptedLLM) GetEmbedding(_ context.Context, text string) ([]float64, error) {
	sum := sha256.Sum256([]byte(text))
	vec := make([]float64, 8)
	for i := range vec {
		vec[i] = float64(sum[i]) / 255
	}
	return vec, nil
}

// StubExplorer satisfies recon.Explorer with a canned login page.
type StubExplorer struct {
	mu    sync.Mutex
	calls int
}

func (s *StubExplorer) ExplorePage(_ context.Context, url string, _ time.Duration) (*recon.PageStructure, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	return &recon.PageStructure{
		URL:   url,
		Title: "Login",
		Inputs: []recon.Element{
			{Selector: "#email", Type: "email", Name: "email"},
			{Selector: "#password", Type: "password", Name: "password"},
		},
		Buttons: []recon.Element{{Selector: "#submit", Text: "Sign in"}},
	}, nil
}

// Calls returns how many pages were explored.
func (s *StubExplorer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
