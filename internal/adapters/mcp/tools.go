package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flist/internal/adapters/filesystem"
	"flist/internal/application/commands"
	"flist/internal/config"
	"flist/internal/control"
	"flist/internal/instance"
)

// RegisterTools adds the list tools to the MCP server. Writes go
// through the instance lock, so a running interactive session receives
// them over its control channel instead of racing on the files.
func RegisterTools(s *server.MCPServer, root string) {
	s.AddTool(listEntriesTool(), listEntriesHandler(root))
	s.AddTool(addEntryTool(), addEntryHandler(root))
}

// --- list_entries ---

func listEntriesTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List the entries of the list, most recent first. Set archived to list the archive instead."),
		mcp.WithBoolean("archived",
			mcp.Description("List archived entries instead of active ones"),
		),
	)
}

func listEntriesHandler(root string) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		repo, err := openRepository(root)
		if err != nil {
			return toolError(err)
		}
		project, err := repo.Load()
		if err != nil {
			return toolError(err)
		}

		entries := project.Entries
		if req.GetBool("archived", false) {
			entries = project.Archive
		}
		if len(entries) == 0 {
			return mcp.NewToolResultText("No entries."), nil
		}

		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s  %s  (%s)\n", e.Name, e.Link.Target, e.TimeAdded.Local().Format("2006-01-02 15:04"))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- add_entry ---

func addEntryTool() mcp.Tool {
	return mcp.NewTool("add_entry",
		mcp.WithDescription("Add a new entry to the top of the list."),
		mcp.WithString("name",
			mcp.Description("Display name of the entry"),
			mcp.Required(),
		),
		mcp.WithString("link",
			mcp.Description("Target of the entry: an absolute path or a URL"),
			mcp.Required(),
		),
		mcp.WithString("metadata",
			mcp.Description("Optional comma-separated tags"),
		),
	)
}

func addEntryHandler(root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		link := req.GetString("link", "")
		metadata := splitMetadata(req.GetString("metadata", ""))

		result, err := instance.AcquireOrForward(root, instance.Options{})
		if err != nil {
			return toolError(err)
		}

		switch res := result.(type) {
		case instance.Forwarded:
			if err := control.Forward(res.Conn, control.InsertRequest{Name: name, Link: link, Metadata: metadata}); err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("Forwarded %q to the running session.", name)), nil

		case instance.Owned:
			defer res.Lock.Release()
			repo, err := openRepository(root)
			if err != nil {
				return toolError(err)
			}
			cmd := commands.NewAddEntryCommand(repo, name, link, metadata)
			added, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("Added %q (%s).", added.Entry.Name, added.Entry.Link.Target)), nil

		case instance.Refused:
			return toolError(fmt.Errorf("another process holds the lock since %s", res.TimeLocked.Local().Format("15:04:05")))

		default:
			return toolError(fmt.Errorf("unexpected lock state %T", result))
		}
	}
}

func openRepository(root string) (*filesystem.Repository, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return filesystem.NewRepository(root, cfg.MaxArchive), nil
}

func splitMetadata(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
