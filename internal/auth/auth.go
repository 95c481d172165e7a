// Where: internal/auth/auth.go
// What: Identity probe and federation tool wrapper.
// Why: Keep the verify/re-auth branch behind one port so the orchestrator stays tool-agnostic.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/catr-tool/catr/internal/runner"
)

const (
	awsBinary      = "aws"
	federationTool = "saml2aws"
)

// Client drives the identity probe and the federation tool under one
// configured profile. It implements ports.IdentityClient.
type Client struct {
	profile string
	region  string
	run     runner.CommandRunner
	log     *slog.Logger

	available func(string) bool
	// sdkProbe is the fallback identity check used when the aws binary is
	// not installed. Calls STS GetCallerIdentity through the SDK.
	sdkProbe func(ctx context.Context, profile, region string) error
}

// NewClient builds a Client over the given runner.
func NewClient(profile, region string, run runner.CommandRunner, log *slog.Logger) *Client {
	return &Client{
		profile:   profile,
		region:    region,
		run:       run,
		log:       log,
		available: runner.Available,
		sdkProbe:  sdkCallerIdentity,
	}
}

// IsValid reports whether the current credentials pass a single identity
// probe. One probe decides the branch; there is no retry.
func (c *Client) IsValid(ctx context.Context) bool {
	if c.available(awsBinary) {
		err := c.run.RunQuiet(ctx, awsBinary, "sts", "get-caller-identity", "--profile", c.profile)
		if err != nil {
			c.log.Info("identity probe failed", "profile", c.profile, "error", err)
			return false
		}
		return true
	}

	if err := c.sdkProbe(ctx, c.profile, c.region); err != nil {
		c.log.Info("identity probe failed", "profile", c.profile, "probe", "sdk", "error", err)
		return false
	}
	return true
}

// SilentLogin runs the federation tool non-interactively. It relies on a
// previously cached session; it must never block waiting for input.
func (c *Client) SilentLogin(ctx context.Context) error {
	out, err := c.run.RunOutput(ctx, federationTool, "login",
		"--skip-prompt",
		"--quiet",
		"--profile", c.profile)
	if err != nil {
		return fmt.Errorf("silent re-authentication failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// InteractiveLogin runs the federation tool attached to the terminal. It may
// block indefinitely, including on an out-of-band MFA prompt.
func (c *Client) InteractiveLogin(ctx context.Context) error {
	if err := c.run.Run(ctx, federationTool, "login", "--profile", c.profile); err != nil {
		return fmt.Errorf("interactive login failed: %w", err)
	}
	return nil
}
