package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListCategoriesTool(srv, svc)
	registerGetCategoryTool(srv, svc)
	registerCreateCategoryTool(srv, svc)
	registerUpdateCategoryTool(srv, svc)
	registerDeleteCategoryTool(srv, svc)
	registerCreateCommandTool(srv, svc)
	registerUpdateCommandTool(srv, svc)
	registerDeleteCommandTool(srv, svc)
	registerMoveCategoryTool(srv, svc)
	registerMoveCommandTool(srv, svc)
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List categories in board order, optionally filtered by a case-insensitive keyword matched against titles, descriptions and commands."),
		mcp.WithString("keyword",
			mcp.Description("Optional search keyword."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Keyword string `json:"keyword"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		cats, err := svc.ListCategories(ctx, args.Keyword)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"categories": cats, "count": len(cats)})
	})
}

func registerGetCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_category",
		mcp.WithDescription("Get a category with its commands."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cat, err := svc.Category(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cat)
	})
}

func registerCreateCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_category",
		mcp.WithDescription("Create a category. New categories are placed first."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Category title."),
		),
		mcp.WithString("description",
			mcp.Description("Optional description."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		cat, err := svc.AddCategory(ctx, args.Title, args.Description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cat)
	})
}

func registerUpdateCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_category",
		mcp.WithDescription("Change the title or description of a category. Omitted fields are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
		mcp.WithString("title",
			mcp.Description("New title."),
		),
		mcp.WithString("description",
			mcp.Description("New description."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID          string  `json:"id"`
			Title       *string `json:"title"`
			Description *string `json:"description"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		cat, err := svc.UpdateCategory(ctx, args.ID, args.Title, args.Description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cat)
	})
}

func registerDeleteCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_category",
		mcp.WithDescription("Delete a category and all of its commands."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.RemoveCategory(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"deleted": id})
	})
}

func registerCreateCommandTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_command",
		mcp.WithDescription("Append a shell command to a category."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command line to store."),
		),
		mcp.WithString("description",
			mcp.Description("Optional description."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category    string `json:"category"`
			Command     string `json:"command"`
			Description string `json:"description"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		cmd, err := svc.AddCommand(ctx, args.Category, args.Command, args.Description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cmd)
	})
}

func registerUpdateCommandTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_command",
		mcp.WithDescription("Change a stored command. Omitted fields are kept."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Command identifier."),
		),
		mcp.WithString("command",
			mcp.Description("New command line."),
		),
		mcp.WithString("description",
			mcp.Description("New description."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category    string  `json:"category"`
			ID          string  `json:"id"`
			Command     *string `json:"command"`
			Description *string `json:"description"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		cmd, err := svc.UpdateCommand(ctx, args.Category, args.ID, args.Command, args.Description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cmd)
	})
}

func registerDeleteCommandTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_command",
		mcp.WithDescription("Delete a command from a category."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Command identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryID, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.RemoveCommand(ctx, categoryID, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"deleted": id})
	})
}

func registerMoveCategoryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_category",
		mcp.WithDescription("Move a category to the position of another category."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Category to move."),
		),
		mcp.WithString("over",
			mcp.Required(),
			mcp.Description("Category whose position it takes."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		over, err := request.RequireString("over")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.MoveCategory(ctx, id, over)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerMoveCommandTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_command",
		mcp.WithDescription("Move a command to the position of another command in the same category."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category identifier."),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Command to move."),
		),
		mcp.WithString("over",
			mcp.Required(),
			mcp.Description("Command whose position it takes."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category string `json:"category"`
			ID       string `json:"id"`
			Over     string `json:"over"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := svc.MoveCommand(ctx, args.Category, args.ID, args.Over)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
