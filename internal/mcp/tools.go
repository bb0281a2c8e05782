package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cloudboard/internal/avatar"
	"cloudboard/internal/catalog"
	"cloudboard/internal/ingest"
)

func providerNames() []string {
	names := make([]string, 0, len(catalog.Providers()))
	for _, p := range catalog.Providers() {
		names = append(names, p.String())
	}
	return names
}

// serverTools declares every tool the server advertises.
func (s *Server) serverTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("catalog_search",
				mcp.WithDescription("Search the company catalog by name, optionally narrowed to one cloud provider"),
				mcp.WithString("query",
					mcp.Description("Case-insensitive substring to match; empty matches everything"),
				),
				mcp.WithString("provider",
					mcp.Description("Only return companies hosted on this provider"),
					mcp.Enum(providerNames()...),
				),
			),
			Handler: s.handleCatalogSearch,
		},
		{
			Tool: mcp.NewTool("catalog_counts",
				mcp.WithDescription("Provider counts, chart slices and the Big-3 (AWS+Azure+GCP) share across the whole catalog"),
			),
			Handler: s.handleCatalogCounts,
		},
		{
			Tool: mcp.NewTool("catalog_add",
				mcp.WithDescription("Detect which cloud hosts a domain and add it to the catalog"),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("Domain or URL to add, e.g. https://www.stripe.com"),
				),
			),
			Handler: s.handleCatalogAdd,
		},
		{
			Tool: mcp.NewTool("provider_detect",
				mcp.WithDescription("Detect which cloud hosts a domain without touching the catalog"),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("Domain or URL to look up"),
				),
			),
			Handler: s.handleProviderDetect,
		},
	}
}

func (s *Server) recordTool(tool, status string) {
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordToolCall(tool, status)
	}
}

// companyInfo is the wire shape tools use for catalog entries.
type companyInfo struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Domain   string `json:"domain"`
	Provider string `json:"provider"`
	LogoURL  string `json:"logo_url"`
	Custom   bool   `json:"custom"`
}

func toCompanyInfo(c catalog.Company) companyInfo {
	logoURL, _ := avatar.FirstSource(c.Domain, c.Name)
	return companyInfo{
		Name:     c.Name,
		Symbol:   c.Symbol,
		Domain:   c.Domain,
		Provider: c.Provider.String(),
		LogoURL:  logoURL,
		Custom:   c.Custom(),
	}
}

func (s *Server) handleCatalogSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	var provider *catalog.Provider
	if name := request.GetString("provider", ""); name != "" {
		p := catalog.ParseProvider(name)
		provider = &p
	}

	matched := catalog.Filter(s.opts.Store.All(), query, provider)
	results := make([]companyInfo, len(matched))
	for i, c := range matched {
		results[i] = toCompanyInfo(c)
	}

	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		s.recordTool("catalog_search", "error")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
	}

	s.recordTool("catalog_search", "ok")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleCatalogCounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := s.opts.Store.All()
	counts := catalog.Counts(all)

	countsByName := make(map[string]int, len(counts))
	for p, n := range counts {
		countsByName[p.String()] = n
	}

	summary := struct {
		Total           int             `json:"total"`
		Counts          map[string]int  `json:"counts"`
		BigThreePercent int             `json:"big_three_percent"`
		Slices          []catalog.Slice `json:"slices"`
	}{
		Total:           len(all),
		Counts:          countsByName,
		BigThreePercent: catalog.BigThreeShare(counts, len(all)),
		Slices:          catalog.PieData(counts),
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		s.recordTool("catalog_counts", "error")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format counts: %v", err)), nil
	}

	s.recordTool("catalog_counts", "ok")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleCatalogAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil {
		s.recordTool("catalog_add", "error")
		return mcp.NewToolResultError("url parameter is required"), nil
	}

	company, err := s.opts.Ingestor.Submit(ctx, rawURL)
	if err != nil {
		s.recordTool("catalog_add", "error")
		if errors.Is(err, ingest.ErrEmptyInput) {
			return mcp.NewToolResultError("url must not be empty"), nil
		}
		return mcp.NewToolResultError(ingest.UserMessage(err)), nil
	}

	if s.opts.Metrics != nil {
		s.opts.Metrics.ObserveCatalog(s.opts.Store)
	}

	jsonData, err := json.MarshalIndent(toCompanyInfo(company), "", "  ")
	if err != nil {
		s.recordTool("catalog_add", "error")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format company: %v", err)), nil
	}

	s.recordTool("catalog_add", "ok")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleProviderDetect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil {
		s.recordTool("provider_detect", "error")
		return mcp.NewToolResultError("url parameter is required"), nil
	}

	provider, err := s.opts.Detector.Detect(ctx, rawURL)
	if err != nil {
		s.recordTool("provider_detect", "error")
		return mcp.NewToolResultError(ingest.UserMessage(fmt.Errorf("%w: %v", ingest.ErrDetectionFailed, err))), nil
	}

	result := struct {
		URL      string `json:"url"`
		Domain   string `json:"domain"`
		Provider string `json:"provider"`
	}{
		URL:      rawURL,
		Domain:   catalog.NormalizeDomain(rawURL),
		Provider: provider.String(),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		s.recordTool("provider_detect", "error")
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}

	s.recordTool("provider_detect", "ok")
	return mcp.NewToolResultText(string(jsonData)), nil
}
