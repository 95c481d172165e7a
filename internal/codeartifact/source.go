// Where: internal/codeartifact/source.go
// What: Authorization token fetch from the registry.
// Why: The refresh path needs one narrow Fetch call regardless of which AWS tooling is installed.
package codeartifact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/catr-tool/catr/internal/config"
	"github.com/catr-tool/catr/internal/runner"
)

const awsBinary = "aws"

// ErrEmptyToken is returned when the fetch succeeded but yielded nothing.
var ErrEmptyToken = errors.New("token fetch returned an empty token")

// Source issues short-lived authorization tokens for the configured domain.
// It implements ports.TokenSource. The aws binary is the primary path; the
// SDK client covers machines without it.
type Source struct {
	domain  string
	owner   string
	region  string
	profile string
	run     runner.CommandRunner
	log     *slog.Logger

	available func(string) bool
	sdkFetch  func(ctx context.Context, cfg config.Config) (string, error)
}

// NewSource builds a Source from the resolved configuration.
func NewSource(cfg config.Config, run runner.CommandRunner, log *slog.Logger) *Source {
	return &Source{
		domain:    cfg.Domain,
		owner:     cfg.DomainOwner,
		region:    cfg.Region,
		profile:   cfg.Profile,
		run:       run,
		log:       log,
		available: runner.Available,
		sdkFetch:  sdkAuthorizationToken,
	}
}

// Fetch requests a token scoped to the configured domain, owner, and region.
// The trimmed tool output is the token; empty output is an error.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	if !s.available(awsBinary) {
		s.log.Info("aws binary not found, fetching token via sdk", "domain", s.domain)
		token, err := s.sdkFetch(ctx, config.Config{
			Domain:      s.domain,
			DomainOwner: s.owner,
			Region:      s.region,
			Profile:     s.profile,
		})
		if err != nil {
			return "", err
		}
		if token == "" {
			return "", ErrEmptyToken
		}
		return token, nil
	}

	out, err := s.run.RunOutput(ctx, awsBinary,
		"codeartifact", "get-authorization-token",
		"--domain", s.domain,
		"--domain-owner", s.owner,
		"--region", s.region,
		"--profile", s.profile,
		"--query", "authorizationToken",
		"--output", "text")
	if err != nil {
		return "", fmt.Errorf("token fetch failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	token := strings.TrimSpace(string(out))
	if token == "" || token == "None" {
		return "", ErrEmptyToken
	}
	return token, nil
}
