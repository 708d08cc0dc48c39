package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/pb33f/libopenapi"

	"github.com/qaforge/qaforge/pkg/models"
)

// Endpoint is one operation extracted from an OpenAPI document.
type Endpoint struct {
	Path           string   `json:"path"`
	Method         string   `json:"method"`
	OperationID    string   `json:"operation_id"`
	Summary        string   `json:"summary,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Parameters     []string `json:"parameters,omitempty"`
	HasRequestBody bool     `json:"has_request_body,omitempty"`
	ResponseCodes  []string `json:"response_codes,omitempty"`
}

var testableMethods = map[string]bool{
	"get": true, "post": true, "put": true, "delete": true, "patch": true,
}

// FetchOpenAPI downloads an OpenAPI document. Failures are transient;
// the generation stage retry budget covers them.
func FetchOpenAPI(ctx context.Context, httpc *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, models.NewPermanent(models.CodeInternal, fmt.Errorf("invalid openapi url: %w", err))
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return nil, models.NewTransient(models.CodeLLMUnavailable, fmt.Errorf("openapi fetch failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewTransient(models.CodeLLMUnavailable,
			fmt.Errorf("openapi fetch returned %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, models.NewTransient(models.CodeLLMUnavailable, fmt.Errorf("openapi read failed: %w", err))
	}
	return raw, nil
}

// ParseEndpoints extracts testable operations from an OpenAPI v3
// document (JSON or YAML).
func ParseEndpoints(content []byte) ([]Endpoint, error) {
	doc, err := libopenapi.NewDocument(content)
	if err != nil {
		return nil, models.NewPermanent(models.CodeInternal, fmt.Errorf("invalid openapi document: %w", err))
	}

	model, errs := doc.BuildV3Model()
	if model == nil {
		return nil, models.NewPermanent(models.CodeInternal,
			fmt.Errorf("failed to build openapi model: %v", errs))
	}

	var endpoints []Endpoint
	if model.Model.Paths == nil {
		return endpoints, nil
	}

	for pathPair := model.Model.Paths.PathItems.First(); pathPair != nil; pathPair = pathPair.Next() {
		path := pathPair.Key()
		item := pathPair.Value()

		for opPair := item.GetOperations().First(); opPair != nil; opPair = opPair.Next() {
			method := opPair.Key()
			op := opPair.Value()
			if !testableMethods[method] {
				continue
			}

			ep := Endpoint{
				Path:        path,
				Method:      strings.ToUpper(method),
				OperationID: op.OperationId,
				Summary:     op.Summary,
				Description: op.Description,
				Tags:        op.Tags,
			}
			if ep.OperationID == "" {
				ep.OperationID = fmt.Sprintf("%s_%s", method, strings.ReplaceAll(path, "/", "_"))
			}

			for _, p := range op.Parameters {
				ep.Parameters = append(ep.Parameters, fmt.Sprintf("%s in %s", p.Name, p.In))
			}
			ep.HasRequestBody = op.RequestBody != nil

			if op.Responses != nil {
				for respPair := op.Responses.Codes.First(); respPair != nil; respPair = respPair.Next() {
					ep.ResponseCodes = append(ep.ResponseCodes, respPair.Key())
				}
				sort.Strings(ep.ResponseCodes)
			}

			endpoints = append(endpoints, ep)
		}
	}

	return endpoints, nil
}
