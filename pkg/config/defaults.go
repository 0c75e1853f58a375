package config

import "time"

// Default returns the built-in configuration. Every value can be overridden
// by verdict.yaml or the environment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL:     24 * time.Hour,
			ShareLinkTTL: 7 * 24 * time.Hour,
		},
		LLM: LLMConfig{
			ChatModel:         "claude-sonnet-4-5",
			ClassifierBaseURL: "https://integrate.api.nvidia.com/v1",
			ClassifierModel:   "nvidia/llama-3.1-nemotron-70b-instruct",
			EmbeddingModel:    "text-embedding-3-small",
		},
		Voice: VoiceConfig{
			Enabled:      true,
			VoiceID:      "pNInz6obpgDQGcFmaJgB",
			CoachVoiceID: "EXAVITQu4vr4xnSDxMaL",
			TTSModel:     "eleven_turbo_v2_5",
			STTModel:     "scribe_v1",
		},
		Retrieval: RetrievalConfig{
			QdrantURL:            "http://localhost:6334",
			StatementsCollection: "prior_statements",
			RulesCollection:      "evidentiary_rules",
			Timeout:              10 * time.Second,
			StatementsTopK:       5,
			RulesTopK:            3,
			EmbeddingDims:        1536,
		},
		Blob: BlobConfig{
			Bucket:     "verdict-artifacts",
			Region:     "us-east-1",
			PresignTTL: time.Hour,
			MaxAudioMB: 25,
		},
		Agents: AgentConfig{
			LiveThreshold:         0.75,
			SecondaryThreshold:    0.50,
			FallbackLiveThreshold: 0.85,
			ObjectionThreshold:    0.70,
			QuestionMaxTokens:     200,
		},
		Worker: WorkerConfig{
			WorkerCount:             2,
			PollInterval:            time.Second,
			PollIntervalJitter:      500 * time.Millisecond,
			JobTimeout:              2 * time.Minute,
			GracefulShutdownTimeout: 2 * time.Minute,
		},
		Sweeper: SweeperConfig{
			Interval: 5 * time.Minute,
			Grace:    15 * time.Minute,
		},
	}
}
