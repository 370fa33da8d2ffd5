package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keeper-rounds/internal/config"
	"keeper-rounds/internal/keeper"
	"keeper-rounds/internal/pipeline"
	"keeper-rounds/internal/report"
)

// KeeperRoundsArgs are the input arguments for the keeper_rounds tool.
type KeeperRoundsArgs struct {
	RosterText        string `json:"roster_text" jsonschema:"Yahoo final roster page copied as plain text (required)"`
	DraftText         string `json:"draft_text" jsonschema:"Yahoo draft results page copied as plain text (required)"`
	OwnersYAML        string `json:"owners_yaml" jsonschema:"YAML mapping of fantasy team name to owner (required)"`
	SubRounds         *int   `json:"keeper_sub_rounds,omitempty" jsonschema:"Rounds a kept player appreciates (default from server)"`
	FARound           *int   `json:"fa_round,omitempty" jsonschema:"Keeper round of free agent pickups (default from server)"`
	UnkeepableRounds  *int   `json:"unkeepable_rounds,omitempty" jsonschema:"Number of top rounds that are unkeepable (default from server)"`
	UnkeepableRoundID *int   `json:"unkeepable_round_id,omitempty" jsonschema:"Keeper round written for unkeepable picks (default from server)"`
}

// KeeperRoundsOutput is the output of the keeper_rounds tool.
type KeeperRoundsOutput struct {
	Statement string         `json:"statement"`
	Report    *report.Report `json:"report"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newServeCmd(a *app) *cobra.Command {
	var (
		addr        string
		mcpPath     string
		requireAuth bool
		authHeader  string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve keeper_rounds as an MCP tool over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := strings.TrimSpace(a.cfg.MCPAPIKey)
			if requireAuth && apiKey == "" {
				return fmt.Errorf("%s_MCP_API_KEY is required (set env var or run with --require-auth=false)", config.EnvPrefix)
			}
			server, registry := newMCPServer(a.cfg.Rules(), a.logger)
			handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
				return server
			}, &mcp.StreamableHTTPOptions{JSONResponse: true})

			mux := http.NewServeMux()
			mux.HandleFunc("/health", withAuth(apiKey, authHeader, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":"ok"}`))
			}))
			mux.HandleFunc("/tools", withAuth(apiKey, authHeader, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
				w.Write(b)
			}))
			mux.HandleFunc(mcpPath, withAuth(apiKey, authHeader, handler.ServeHTTP))

			a.logger.Info("MCP HTTP server listening", zap.String("addr", addr), zap.String("path", mcpPath))
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&mcpPath, "path", "/mcp", "HTTP path for MCP endpoint")
	cmd.Flags().BoolVar(&requireAuth, "require-auth", true, "require API key auth via "+config.EnvPrefix+"_MCP_API_KEY")
	cmd.Flags().StringVar(&authHeader, "auth-header", "X-API-Key", "HTTP header to read API key from")
	return cmd
}

func newMCPServer(defaults keeper.Rules, logger *zap.Logger) (*mcp.Server, []toolInfo) {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "keeper-rounds",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 1)
	addTool(server, &registry, &mcp.Tool{
		Name:        "keeper_rounds",
		Description: "Keeper round for every rostered player from Yahoo roster and draft text",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args KeeperRoundsArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(buildKeeperRounds(defaults, args, logger))
	})
	return server, registry
}

func buildKeeperRounds(defaults keeper.Rules, args KeeperRoundsArgs, logger *zap.Logger) ([]byte, error) {
	if strings.TrimSpace(args.RosterText) == "" {
		return nil, fmt.Errorf("roster_text is required")
	}
	if strings.TrimSpace(args.OwnersYAML) == "" {
		return nil, fmt.Errorf("owners_yaml is required")
	}
	rules := defaults
	if args.SubRounds != nil {
		rules.SubRounds = *args.SubRounds
	}
	if args.FARound != nil {
		rules.FARound = *args.FARound
	}
	if args.UnkeepableRounds != nil {
		rules.UnkeepableRounds = *args.UnkeepableRounds
	}
	if args.UnkeepableRoundID != nil {
		rules.UnkeepableRoundID = *args.UnkeepableRoundID
	}
	cfg := config.Config{
		SubRounds:         rules.SubRounds,
		FARound:           rules.FARound,
		UnkeepableRounds:  rules.UnkeepableRounds,
		UnkeepableRoundID: rules.UnkeepableRoundID,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := pipeline.Run(pipeline.Inputs{
		Roster: strings.NewReader(args.RosterText),
		Draft:  strings.NewReader(args.DraftText),
		Owners: strings.NewReader(args.OwnersYAML),
	}, rules, logger)
	if err != nil {
		return nil, err
	}
	statement, err := report.Statement(res.Roster)
	if err != nil {
		return nil, err
	}
	rep, err := report.Build(res, time.Now())
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(KeeperRoundsOutput{Statement: statement, Report: rep}, "", "  ")
}

func withAuth(apiKey, header string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			next(w, r)
			return
		}
		key := strings.TrimSpace(r.Header.Get(header))
		if key == "" {
			if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				key = strings.TrimSpace(authz[7:])
			}
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next(w, r)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(res), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
