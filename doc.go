// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the revendications API server.

The server hosts themed lists of citizen revendications, collects simple
oui/non/abstention votes and point-based priority scores, and proxies
requests to text- and image-generation providers to produce per-demand
analyses.

# Starting the Server

The server reads configuration from flags, environment variables, or a
local .env file:

	GROQ_API_KEY=gsk-... go run main.go

Or with flags:

	go run main.go -p 3144 -data docs/data -ranking score

# Configuration

Optional settings (all have workable defaults or degrade gracefully):

  - PORT (-p): listen port (default: 3144)
  - DATA_DIR (-data): per-category JSON documents (default: docs/data)
  - STATIC_DIR (-static): static front-end directory
  - RANKING_POLICY (-ranking): "score" or "votes" (default: score)
  - GROQ_API_KEY / GROQ_MODEL: text provider
  - GEMINI_API_KEY / GEMINI_MODEL: image provider; absence disables
    image generation without failing startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: JSON-document persistence, vote/score mutation, sorted views,
    statistics, analysis log
  - ai: provider clients, retry policy, text+image orchestration
  - handlers: HTTP request handlers (data, votes, analysis)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
