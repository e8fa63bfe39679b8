package httpfetch

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
)

func tlsConfigFor(acceptInvalid bool, base *tls.Config) *tls.Config {
	var cfg tls.Config
	if base != nil {
		cfg = *base
	}
	cfg.InsecureSkipVerify = acceptInvalid
	return &cfg
}

func proxyFuncFor(proxy string) (func(*http.Request) (*url.URL, error), error) {
	u, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}
	return http.ProxyURL(u), nil
}

// redirectPolicy enforces AnalyzeOptions.MaxRedirects (§4.7).
func redirectPolicy(maxRedirects int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
}
