package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL        = "http://localhost:8080"
	defaultTimeout       = 30 * time.Second
	defaultPollInterval  = 5 * time.Second
	defaultRedirectDelay = 2 * time.Second
)

type settings struct {
	APIURL        string
	Timeout       time.Duration
	PollInterval  time.Duration
	RedirectDelay time.Duration
	SuccessURL    string
}

// loadSettings resolves flags over CHECKOUT_* env vars over defaults.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("CHECKOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-url", defaultAPIURL)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("poll-interval", defaultPollInterval)
	v.SetDefault("redirect-delay", defaultRedirectDelay)
	v.SetDefault("success-url", "")

	for _, name := range []string{"api-url", "timeout", "poll-interval", "redirect-delay", "success-url"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return settings{}, err
			}
		}
	}

	s := settings{
		APIURL:        strings.TrimRight(strings.TrimSpace(v.GetString("api-url")), "/"),
		Timeout:       v.GetDuration("timeout"),
		PollInterval:  v.GetDuration("poll-interval"),
		RedirectDelay: v.GetDuration("redirect-delay"),
		SuccessURL:    strings.TrimSpace(v.GetString("success-url")),
	}
	if s.APIURL == "" {
		return settings{}, fmt.Errorf("api url is required")
	}
	if s.PollInterval <= 0 {
		return settings{}, fmt.Errorf("poll interval must be positive, got %s", s.PollInterval)
	}
	if s.RedirectDelay < 0 {
		return settings{}, fmt.Errorf("redirect delay must not be negative, got %s", s.RedirectDelay)
	}
	return s, nil
}
