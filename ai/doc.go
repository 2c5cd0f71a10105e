// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ai wraps the external generation providers behind retrying clients
and an orchestrator that never lets a provider failure escape as anything
but a structured payload.

# Providers

  - GroqClient: chat completions over Groq's OpenAI-compatible REST API,
    used for the stage-one "detail" analysis and the stage-two "optimise"
    solution.
  - GeminiClient: image generation via generateContent with an IMAGE
    response modality, returning a data-URI. Constructed nil when no
    credential is configured, which disables the image branch entirely.

# Retry Policy

Provider calls run under a bounded retry policy (Policy): 3 attempts with
exponential backoff for text, 5 attempts with a fixed 500ms delay for
images. A quota error (HTTP 429, ErrQuotaExceeded) is permanent and aborts
the loop immediately instead of burning the budget. Built on
github.com/cenkalti/backoff/v5.

# Orchestration

	orch := ai.NewOrchestrator(groq, gemini)
	resp := orch.FullAnalysis(ctx, topic)

FullAnalysis fans the text and image branches out in parallel and joins
them. The text branch degrades to an inline HTML error payload on
exhaustion; the image branch degrades to a null media URL. The Optimise
stage is chained by the caller after Detail, not inside the join.
*/
package ai
