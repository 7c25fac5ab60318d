package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTLh int

	// Vector index
	ChromaDir string
	TopK      int

	// Ingestion
	DataPath     string
	ChunkSize    int
	ChunkOverlap int

	// Embeddings
	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	// Chat completions
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	LLMTemp     float64

	// Outbound mail (OTP delivery); mailer is mocked when SMTPHost is empty
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Printf("[cfg] %s=%q is not an int, using %d", k, v, def)
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Printf("[cfg] %s=%q is not a float, using %g", k, v, def)
		}
		return def
	}

	// OPENAI_API_KEY doubles as the key for both endpoints when the
	// dedicated ones are unset.
	openaiKey := os.Getenv("OPENAI_API_KEY")

	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "collegefaq.db"),
		JWTSecret: get("JWT_SECRET", "dev-secret"),
		TokenTTLh: getInt("TOKEN_TTL_HOURS", 24),

		ChromaDir: get("CHROMA_DIR", "chroma_db"),
		TopK:      getInt("TOP_K", 3),

		DataPath:     get("DATA_PATH", "data/faqs.md"),
		ChunkSize:    getInt("CHUNK_SIZE", 600),
		ChunkOverlap: getInt("CHUNK_OVERLAP", 80),

		EmbEndpoint: get("EMB_ENDPOINT", "https://api.openai.com"),
		EmbAPIKey:   get("EMB_API_KEY", openaiKey),
		EmbModel:    get("EMB_MODEL", "text-embedding-3-small"),

		LLMEndpoint: get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:   get("LLM_API_KEY", openaiKey),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		LLMTemp:     getFloat("LLM_TEMPERATURE", 0.2),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		MailFrom: get("MAIL_FROM", "no-reply@college.example"),
	}
	log.Printf("[cfg] port=%s db=%s chroma=%s k=%d emb_model=%s llm_model=%s",
		cfg.Port, cfg.DBPath, cfg.ChromaDir, cfg.TopK, cfg.EmbModel, cfg.LLMModel)
	return cfg
}
