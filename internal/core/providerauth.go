package core

import "encoding/base64"

// applyAuth attaches a provider-appropriate Authorization header to a
// candidate when a token is configured, per §4.5: Bearer for GitHub/GitLab/
// Codeberg/Azure DevOps, Basic (empty username) for Bitbucket. Tokens are
// never logged; this is the only place the token value is read out of opts.
func applyAuth(cand *ArchiveCandidate, provider Provider, opts *AnalyzeOptions) {
	if opts == nil {
		return
	}
	token := resolveToken(provider, opts)
	if token == "" {
		return
	}
	switch provider {
	case ProviderBitbucket:
		cand.AuthHeaderName = "Authorization"
		cand.AuthHeaderVal = "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+token))
	default:
		cand.AuthHeaderName = "Authorization"
		cand.AuthHeaderVal = "Bearer " + token
	}
}

// resolveToken prefers a per-provider override in ProviderSettings (keys
// like "github.token") over the blanket AuthToken (itself sourced from
// BRADAR_TOKEN by config.LoadToken when not set explicitly).
func resolveToken(provider Provider, opts *AnalyzeOptions) string {
	if opts.ProviderSettings != nil {
		if v, ok := opts.ProviderSettings[providerSettingsPrefix(provider)+"token"]; ok && v != "" {
			return v
		}
	}
	return opts.AuthToken
}

func providerSettingsPrefix(provider Provider) string {
	switch provider {
	case ProviderGitHub:
		return "github."
	case ProviderGitLab:
		return "gitlab."
	case ProviderBitbucket:
		return "bitbucket."
	case ProviderCodeberg:
		return "codeberg."
	case ProviderSourceForge:
		return "sourceforge."
	case ProviderAzureDevOps:
		return "azuredevops."
	default:
		return ""
	}
}
