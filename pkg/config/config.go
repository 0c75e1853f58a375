// Package config loads and validates service configuration.
//
// Configuration comes from two places: a verdict.yaml file for tunables
// (worker pool, agent thresholds, retention) and environment variables for
// secrets and endpoints. A .env file is honored in development via godotenv
// (loaded in main, not here).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	LLM       LLMConfig       `yaml:"llm"`
	Voice     VoiceConfig     `yaml:"voice"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Blob      BlobConfig      `yaml:"blob"`
	Agents    AgentConfig     `yaml:"agents"`
	Worker    WorkerConfig    `yaml:"worker"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AuthConfig holds token settings. The JWT secret always comes from the
// environment, never from YAML.
type AuthConfig struct {
	JWTSecret    string        `yaml:"-"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	ShareLinkTTL time.Duration `yaml:"share_link_ttl"`
}

// LLMConfig holds model client settings for both providers: the Anthropic API
// for streaming/chat agents and an OpenAI-compatible endpoint for the fast
// classifier and embeddings.
type LLMConfig struct {
	AnthropicAPIKey string `yaml:"-"`
	ChatModel       string `yaml:"chat_model"`

	ClassifierAPIKey  string `yaml:"-"`
	ClassifierBaseURL string `yaml:"classifier_base_url"`
	ClassifierModel   string `yaml:"classifier_model"`
	EmbeddingModel    string `yaml:"embedding_model"`
}

// VoiceConfig holds ElevenLabs settings. Voice is best-effort everywhere:
// when disabled or failing, sessions run text-only.
type VoiceConfig struct {
	APIKey       string `yaml:"-"`
	Enabled      bool   `yaml:"enabled"`
	VoiceID      string `yaml:"voice_id"`
	CoachVoiceID string `yaml:"coach_voice_id"`
	TTSModel     string `yaml:"tts_model"`
	STTModel     string `yaml:"stt_model"`
}

// RetrievalConfig holds vector store settings.
type RetrievalConfig struct {
	QdrantURL            string        `yaml:"qdrant_url"`
	QdrantAPIKey         string        `yaml:"-"`
	StatementsCollection string        `yaml:"statements_collection"`
	RulesCollection      string        `yaml:"rules_collection"`
	Timeout              time.Duration `yaml:"timeout"`
	StatementsTopK       int           `yaml:"statements_top_k"`
	RulesTopK            int           `yaml:"rules_top_k"`
	EmbeddingDims        int           `yaml:"embedding_dims"`
}

// BlobConfig holds object storage settings.
type BlobConfig struct {
	Bucket     string        `yaml:"bucket"`
	Region     string        `yaml:"region"`
	PresignTTL time.Duration `yaml:"presign_ttl"`
	Disabled   bool          `yaml:"disabled"`
	MaxAudioMB int           `yaml:"max_audio_mb"`
}

// AgentConfig holds agent decision thresholds.
type AgentConfig struct {
	// Sentinel contradiction thresholds. Primary classifier path fires a live
	// interruption at LiveThreshold and records a background flag at
	// SecondaryThreshold. When the primary classifier is unavailable the
	// fallback verifier uses FallbackLiveThreshold for live fires; the
	// secondary threshold is unchanged.
	LiveThreshold         float64 `yaml:"live_threshold"`
	SecondaryThreshold    float64 `yaml:"secondary_threshold"`
	FallbackLiveThreshold float64 `yaml:"fallback_live_threshold"`

	// ObjectionThreshold is the minimum confidence for raising an
	// objection alert.
	ObjectionThreshold float64 `yaml:"objection_threshold"`

	// QuestionMaxTokens caps streamed interrogator questions.
	QuestionMaxTokens int `yaml:"question_max_tokens"`
}

// WorkerConfig controls the brief generation worker pool.
type WorkerConfig struct {
	WorkerCount             int           `yaml:"worker_count"`
	PollInterval            time.Duration `yaml:"poll_interval"`
	PollIntervalJitter      time.Duration `yaml:"poll_interval_jitter"`
	JobTimeout              time.Duration `yaml:"job_timeout"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// SweeperConfig controls abandoned-session detection. Sessions past their
// duration budget plus Grace are abandoned.
type SweeperConfig struct {
	Interval time.Duration `yaml:"interval"`
	Grace    time.Duration `yaml:"grace"`
}

// Initialize loads configuration: defaults, then the YAML file (if present),
// then environment variables for secrets, then validation.
func Initialize(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			slog.Info("No config file found, using defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			expanded := ExpandEnv(data)
			if err := yaml.Unmarshal(expanded, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.LLM.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.LLM.ClassifierAPIKey = os.Getenv("CLASSIFIER_API_KEY")
	cfg.Voice.APIKey = os.Getenv("ELEVENLABS_API_KEY")
	cfg.Retrieval.QdrantAPIKey = os.Getenv("QDRANT_API_KEY")
	if v := os.Getenv("QDRANT_URL"); v != "" {
		cfg.Retrieval.QdrantURL = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.Blob.Bucket = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Blob.Region = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
