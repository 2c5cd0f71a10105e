package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/ia-local/revendications/models"
)

type Config struct {
	Port         int
	DataDir      string
	StaticDir    string
	GroqAPIKey   string
	GroqModel    string
	GeminiAPIKey string
	GeminiModel  string
	Ranking      string
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("revendications", flag.ContinueOnError)

	// Network and data config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataDir, "data", "", "Directory of per-category JSON documents")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory of static front-end files (optional)")
	fs.StringVar(&cfg.Ranking, "ranking", "", "Ranking policy: score or votes")

	// Provider settings (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.GroqAPIKey, "groq-key", "", "Groq API key (prefer env)")
	fs.StringVar(&cfg.GroqModel, "groq-model", "", "Groq chat model")
	fs.StringVar(&cfg.GeminiAPIKey, "gemini-key", "", "Gemini API key (prefer env)")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", "", "Gemini image model")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3144 // default
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "docs/data"
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}

	// Provider credentials are optional: a missing Groq key makes text
	// generation fail per call, a missing Gemini key disables image
	// generation entirely. Neither blocks startup.
	if cfg.GroqAPIKey == "" {
		cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	}
	if cfg.GroqModel == "" {
		cfg.GroqModel = os.Getenv("GROQ_MODEL")
		if cfg.GroqModel == "" {
			cfg.GroqModel = "llama-3.1-8b-instant"
		}
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = os.Getenv("GEMINI_MODEL")
		if cfg.GeminiModel == "" {
			cfg.GeminiModel = "gemini-2.5-flash-image-preview"
		}
	}

	if cfg.Ranking == "" {
		cfg.Ranking = os.Getenv("RANKING_POLICY")
		if cfg.Ranking == "" {
			cfg.Ranking = models.RankingScore
		}
	}
	if cfg.Ranking != models.RankingScore && cfg.Ranking != models.RankingVotes {
		return Config{}, errors.New("ranking policy must be 'score' or 'votes'")
	}

	return cfg, nil
}
