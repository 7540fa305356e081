// Package mcp exposes the splice editor as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/tripsplice/internal/adapter"
	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "tripsplice"

// Server wraps an MCP server whose tools edit generated trip pages.
type Server struct {
	editor    domain.Editor
	log       *logrus.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a server and registers the section and edit tools.
func NewServer(editor domain.Editor, log *logrus.Logger, version string) (*Server, error) {
	if editor == nil {
		return nil, errors.New("editor cannot be nil")
	}

	s := &Server{
		editor:    editor,
		log:       log,
		mcpServer: server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false)),
	}

	s.registerTools()

	return s, nil
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"sections_list",
		mcp.WithDescription("List the flights and hotels sections of a generated page with their element counts"),
		mcp.WithString("code", mcp.Required(), mcp.Description("Full source text of the page")),
	), s.handleSections)

	for _, ct := range m.Components() {
		singular := strings.TrimSuffix(ct.Name, "s")

		for _, op := range []m.Operation{m.OpUpdate, m.OpRemove, m.OpAdd} {
			opts := []mcp.ToolOption{
				mcp.WithDescription(toolDescription(ct, op)),
				mcp.WithString("code", mcp.Required(), mcp.Description("Full source text of the page")),
				mcp.WithNumber("section", mcp.Description(fmt.Sprintf("0-based index of the <%s> block", ct.Tag))),
			}

			if op != m.OpAdd {
				opts = append(opts, mcp.WithNumber("element",
					mcp.Description(fmt.Sprintf("0-based index within the %s array", ct.Field))))
			}

			if op.NeedsRecord() {
				opts = append(opts, mcp.WithString("record", mcp.Required(),
					mcp.Description(fmt.Sprintf("The %s record as a JSON object", singular))))
			}

			s.mcpServer.AddTool(mcp.NewTool(singular+"_"+string(op), opts...), s.editHandler(ct, op))
		}
	}
}

func toolDescription(ct m.ComponentType, op m.Operation) string {
	switch op {
	case m.OpUpdate:
		return fmt.Sprintf("Replace one element of the %s array of a <%s> block", ct.Field, ct.Tag)
	case m.OpRemove:
		return fmt.Sprintf("Remove one element of the %s array of a <%s> block; the last element is never removed", ct.Field, ct.Tag)
	default:
		return fmt.Sprintf("Append an element to the %s array of a <%s> block", ct.Field, ct.Tag)
	}
}

func (s *Server) handleSections(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSections(s.editor.Sections(code))), nil
}

func (s *Server) editHandler(
	ct m.ComponentType, op m.Operation,
) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		args := request.GetArguments()

		section, err := intArgument(args, "section")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		element, err := intArgument(args, "element")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		edit := m.Edit{Op: op, Component: ct, SectionIndex: section, ElementIndex: element}

		if op.NeedsRecord() {
			raw, err := request.RequireString("record")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if edit, err = attachRecord(edit, raw); err != nil {
				s.log.WithError(err).WithField("component", ct.Name).Debug("rejected tool record")
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		result := s.editor.Apply(code, edit)

		return mcp.NewToolResultText(formatResult(result)), nil
	}
}

// intArgument reads an optional index. JSON numbers arrive as float64.
func intArgument(args map[string]any, key string) (int, error) {
	switch v := args[key].(type) {
	case nil:
		return 0, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
		}

		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

func attachRecord(edit m.Edit, raw string) (m.Edit, error) {
	switch edit.Component.Name {
	case m.ComponentFlights.Name:
		flight, err := adapter.ParseFlight([]byte(raw))
		if err != nil {
			return m.Edit{}, err
		}

		edit.Flight = &flight
	case m.ComponentHotels.Name:
		hotel, err := adapter.ParseHotel([]byte(raw))
		if err != nil {
			return m.Edit{}, err
		}

		edit.Hotel = &hotel
	}

	if err := edit.Record().Validate(); err != nil {
		return m.Edit{}, err
	}

	return edit, nil
}

// formatResult puts the status on the first line and the full code after a
// blank line so clients can split on the first "\n\n".
func formatResult(result m.EditResult) string {
	return fmt.Sprintf("status: %s\n\n%s", result.Status, result.Code)
}

func formatSections(sections []m.SectionSummary) string {
	if len(sections) == 0 {
		return "No flights or hotels sections found"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Found %d section(s):\n", len(sections))

	for _, section := range sections {
		if !section.FieldFound {
			fmt.Fprintf(&sb, "- %s section %d: no %s array\n", section.Component.Name, section.Ordinal, section.Component.Field)
			continue
		}

		fmt.Fprintf(&sb, "- %s section %d: %d element(s)\n", section.Component.Name, section.Ordinal, section.Elements)
	}

	return sb.String()
}

// Run serves the tools over standard input and output until the client
// disconnects.
func (s *Server) Run() error {
	s.log.WithField("server", ServerName).Info("serving MCP tools on stdio")

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}

	return nil
}
