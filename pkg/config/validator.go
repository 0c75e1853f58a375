package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks invariants the rest of the system relies on. It returns all
// problems at once rather than failing on the first.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port out of range: %d", c.Server.Port))
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is not set")
	}
	if c.Auth.ShareLinkTTL <= 0 {
		problems = append(problems, "auth.share_link_ttl must be positive")
	}

	if !(c.Agents.SecondaryThreshold <= c.Agents.LiveThreshold) {
		problems = append(problems, "agents.secondary_threshold must not exceed agents.live_threshold")
	}
	if !(c.Agents.LiveThreshold <= c.Agents.FallbackLiveThreshold) {
		problems = append(problems, "agents.fallback_live_threshold must not be below agents.live_threshold")
	}
	for name, v := range map[string]float64{
		"agents.live_threshold":          c.Agents.LiveThreshold,
		"agents.secondary_threshold":     c.Agents.SecondaryThreshold,
		"agents.fallback_live_threshold": c.Agents.FallbackLiveThreshold,
		"agents.objection_threshold":     c.Agents.ObjectionThreshold,
	} {
		if v < 0 || v > 1 {
			problems = append(problems, fmt.Sprintf("%s out of range [0,1]: %v", name, v))
		}
	}

	if c.Worker.WorkerCount < 1 {
		problems = append(problems, "worker.worker_count must be at least 1")
	}
	if c.Sweeper.Grace <= 0 {
		problems = append(problems, "sweeper.grace must be positive")
	}
	if c.Retrieval.StatementsTopK < 1 || c.Retrieval.RulesTopK < 1 {
		problems = append(problems, "retrieval top_k values must be at least 1")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}
