// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3144)
  - DataDir: Directory of per-category JSON documents (default: docs/data)
  - StaticDir: Static front-end directory (optional)
  - GroqAPIKey / GroqModel: Text-generation provider settings
  - GeminiAPIKey / GeminiModel: Image-generation provider settings
  - Ranking: Sort policy, "score" or "votes" (default: score)

# CLI Flags

	-p            Server port
	-data         Data directory
	-static       Static file directory
	-ranking      Ranking policy
	-groq-key     Groq API key
	-groq-model   Groq chat model
	-gemini-key   Gemini API key
	-gemini-model Gemini image model

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATA_DIR       → -data
	STATIC_DIR     → -static
	RANKING_POLICY → -ranking
	GROQ_API_KEY   → -groq-key
	GROQ_MODEL     → -groq-model
	GEMINI_API_KEY → -gemini-key
	GEMINI_MODEL   → -gemini-model

CLI flags take precedence over environment variables.

# Validation

Provider credentials are never required at startup: a missing Groq key makes
text-generation calls fail per request, and a missing Gemini key disables
image generation. ParseFlags returns an error only for malformed PORT values
or an unknown ranking policy.
*/
package cliparse
