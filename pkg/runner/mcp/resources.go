package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerCategoriesResource(srv, svc)
	registerCategoryTemplate(srv, svc)
	registerSnapshotResource(srv, svc)
}

func registerCategoriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"keepcmd://categories",
		"Categories",
		mcp.WithResourceDescription("All categories in board order with command counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListCategories(ctx, "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"categories": summaries,
			"count":      len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerCategoryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"keepcmd://categories/{id}",
		"Category Commands",
		mcp.WithTemplateDescription("A category with its ordered commands."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("category id is required")
		}
		cat, err := svc.Category(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"category": cat})
	})
}

func registerSnapshotResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"keepcmd://snapshot",
		"Snapshot",
		mcp.WithResourceDescription("The versioned document keepcmd persists, suitable for backups."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := svc.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

// templateArg accepts both a plain string and the []string form the template
// matcher produces.
func templateArg(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
