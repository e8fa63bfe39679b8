package core

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Provider identifies the hosting platform a reference resolves against.
type Provider int

const (
	ProviderUnknown Provider = iota
	ProviderGitHub
	ProviderGitLab
	ProviderBitbucket
	ProviderCodeberg
	ProviderSourceForge
	ProviderAzureDevOps
	ProviderDirect
)

// defaultBranches is the fallback order tried when a reference omits a ref,
// per §4.5.
var defaultBranches = []string{"main", "master", "develop", "dev"}

var shaLikeRef = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

// ArchiveCandidate is one URL the orchestrator will try, in order.
type ArchiveCandidate struct {
	URL            string
	AuthHeaderName string
	AuthHeaderVal  string
	ExpectedFormat string // "tar.gz" or "zip"
	Ref            string
}

// ResolveReference turns a compact reference, full URL, or direct archive
// URL into a project name, provider, and ordered archive candidates.
func ResolveReference(ref string, opts *AnalyzeOptions) (projectName string, provider Provider, candidates []ArchiveCandidate, err *Error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ProviderUnknown, nil, NewError(ErrInvalidReference, "empty reference", nil)
	}

	if looksLikeDirectArchive(ref) {
		name := directArchiveProjectName(ref)
		return name, ProviderDirect, []ArchiveCandidate{{
			URL:            ref,
			ExpectedFormat: archiveFormatFor(ref),
		}}, nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return resolveFullURL(ref, opts)
	}

	return resolveCompact(ref, opts)
}

func looksLikeDirectArchive(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") || strings.HasSuffix(lower, ".zip")
}

func archiveFormatFor(ref string) string {
	lower := strings.ToLower(ref)
	if strings.HasSuffix(lower, ".zip") {
		return "zip"
	}
	return "tar.gz"
}

func directArchiveProjectName(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	segs := strings.Split(strings.TrimSuffix(u.Path, "/"), "/")
	if len(segs) == 0 {
		return ref
	}
	return segs[len(segs)-1]
}

// resolveCompact handles "owner/repo" and "owner/repo@ref", assumed GitHub
// per §4.5's primary examples.
func resolveCompact(ref string, opts *AnalyzeOptions) (string, Provider, []ArchiveCandidate, *Error) {
	owner, repo, explicitRef, err := parseOwnerRepoRef(ref)
	if err != nil {
		return "", ProviderUnknown, nil, err
	}
	projectName := buildProjectName(owner, repo, explicitRef)
	candidates := githubCandidates(owner, repo, explicitRef, opts)
	return projectName, ProviderGitHub, candidates, nil
}

func parseOwnerRepoRef(ref string) (owner, repo, explicitRef string, err *Error) {
	main := ref
	if idx := strings.LastIndex(ref, "@"); idx >= 0 {
		main = ref[:idx]
		explicitRef = ref[idx+1:]
	}
	parts := strings.Split(main, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", NewError(ErrInvalidReference, fmt.Sprintf("expected owner/repo[@ref], got %q", ref), nil)
	}
	return parts[0], parts[1], explicitRef, nil
}

func buildProjectName(owner, repo, ref string) string {
	if ref == "" {
		return owner + "_" + repo
	}
	return owner + "_" + repo + "@" + ref
}

func refCandidates(explicitRef string) []string {
	if explicitRef != "" {
		return []string{explicitRef}
	}
	return defaultBranches
}

func githubCandidates(owner, repo, explicitRef string, opts *AnalyzeOptions) []ArchiveCandidate {
	var out []ArchiveCandidate
	for _, ref := range refCandidates(explicitRef) {
		var u string
		if shaLikeRef.MatchString(ref) {
			u = fmt.Sprintf("https://codeload.github.com/%s/%s/tar.gz/%s", owner, repo, ref)
		} else {
			u = fmt.Sprintf("https://codeload.github.com/%s/%s/tar.gz/refs/heads/%s", owner, repo, ref)
		}
		cand := ArchiveCandidate{URL: u, ExpectedFormat: "tar.gz", Ref: ref}
		applyAuth(&cand, ProviderGitHub, opts)
		out = append(out, cand)
	}
	return out
}

// resolveFullURL inspects the host of a full URL to pick a provider, then
// builds candidates from the path (owner/repo[/tree/ref]).
func resolveFullURL(ref string, opts *AnalyzeOptions) (string, Provider, []ArchiveCandidate, *Error) {
	u, perr := url.Parse(ref)
	if perr != nil {
		return "", ProviderUnknown, nil, NewError(ErrInvalidReference, "malformed URL", perr)
	}
	host := strings.ToLower(u.Host)
	owner, repo, explicitRef, perr2 := parseHostPath(u.Path)
	if perr2 != nil {
		return "", ProviderUnknown, nil, perr2
	}

	var provider Provider
	var candidates []ArchiveCandidate
	switch {
	case strings.Contains(host, "github.com"):
		provider = ProviderGitHub
		candidates = githubCandidates(owner, repo, explicitRef, opts)
	case strings.Contains(host, "gitlab.com"):
		provider = ProviderGitLab
		candidates = gitlabCandidates(owner, repo, explicitRef, opts)
	case strings.Contains(host, "bitbucket.org"):
		provider = ProviderBitbucket
		candidates = bitbucketCandidates(owner, repo, explicitRef, opts)
	case strings.Contains(host, "codeberg.org"), strings.Contains(host, "gitea"):
		provider = ProviderCodeberg
		candidates = giteaCandidates(host, owner, repo, explicitRef, opts)
	case strings.Contains(host, "sourceforge.net"):
		provider = ProviderSourceForge
		candidates = sourceforgeCandidates(repo, explicitRef, opts)
	case strings.Contains(host, "dev.azure.com"), strings.Contains(host, "visualstudio.com"):
		provider = ProviderAzureDevOps
		candidates = azureDevOpsCandidates(u, explicitRef, opts)
	default:
		return "", ProviderUnknown, nil, NewError(ErrInvalidReference, fmt.Sprintf("unrecognized host %q", host), nil)
	}
	return buildProjectName(owner, repo, explicitRef), provider, candidates, nil
}

func parseHostPath(p string) (owner, repo, ref string, err *Error) {
	p = strings.Trim(p, "/")
	segs := strings.Split(p, "/")
	if len(segs) < 2 {
		return "", "", "", NewError(ErrInvalidReference, "URL path must contain owner/repo", nil)
	}
	owner, repo = segs[0], strings.TrimSuffix(segs[1], ".git")
	// "owner/repo/tree/<ref>" or "owner/repo/-/tree/<ref>" conventions.
	for i := 2; i < len(segs)-1; i++ {
		if segs[i] == "tree" || segs[i] == "src" {
			ref = strings.Join(segs[i+1:], "/")
			break
		}
	}
	return owner, repo, ref, nil
}

func gitlabCandidates(owner, repo, explicitRef string, opts *AnalyzeOptions) []ArchiveCandidate {
	var out []ArchiveCandidate
	for _, ref := range refCandidates(explicitRef) {
		u := fmt.Sprintf("https://gitlab.com/%s/%s/-/archive/%s/%s-%s.tar.gz", owner, repo, ref, repo, ref)
		cand := ArchiveCandidate{URL: u, ExpectedFormat: "tar.gz", Ref: ref}
		applyAuth(&cand, ProviderGitLab, opts)
		out = append(out, cand)
	}
	return out
}

func bitbucketCandidates(owner, repo, explicitRef string, opts *AnalyzeOptions) []ArchiveCandidate {
	var out []ArchiveCandidate
	for _, ref := range refCandidates(explicitRef) {
		u := fmt.Sprintf("https://bitbucket.org/%s/%s/get/%s.tar.gz", owner, repo, ref)
		cand := ArchiveCandidate{URL: u, ExpectedFormat: "tar.gz", Ref: ref}
		applyAuth(&cand, ProviderBitbucket, opts)
		out = append(out, cand)
	}
	return out
}

func giteaCandidates(host, owner, repo, explicitRef string, opts *AnalyzeOptions) []ArchiveCandidate {
	var out []ArchiveCandidate
	for _, ref := range refCandidates(explicitRef) {
		u := fmt.Sprintf("https://%s/%s/%s/archive/%s.tar.gz", host, owner, repo, ref)
		cand := ArchiveCandidate{URL: u, ExpectedFormat: "tar.gz", Ref: ref}
		applyAuth(&cand, ProviderCodeberg, opts)
		out = append(out, cand)
	}
	return out
}

func sourceforgeCandidates(repo, explicitRef string, opts *AnalyzeOptions) []ArchiveCandidate {
	ref := explicitRef
	if ref == "" {
		ref = "master"
	}
	u := fmt.Sprintf("https://sourceforge.net/projects/%s/files/%s/%s.tar.gz/download", repo, ref, repo)
	cand := ArchiveCandidate{URL: u, ExpectedFormat: "tar.gz", Ref: ref}
	applyAuth(&cand, ProviderSourceForge, opts)
	return []ArchiveCandidate{cand}
}

func azureDevOpsCandidates(u *url.URL, explicitRef string, opts *AnalyzeOptions) []ArchiveCandidate {
	ref := explicitRef
	if ref == "" {
		ref = "main"
	}
	base := fmt.Sprintf("https://%s%s", u.Host, u.Path)
	archiveURL := fmt.Sprintf("%s/_apis/git/repositories/items?download=true&$format=zip&version=%s", strings.TrimSuffix(base, "/"), ref)
	cand := ArchiveCandidate{URL: archiveURL, ExpectedFormat: "zip", Ref: ref}
	applyAuth(&cand, ProviderAzureDevOps, opts)
	return []ArchiveCandidate{cand}
}
