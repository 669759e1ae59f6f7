// Package release compares the running build against the latest published
// hashbridge release: its version, and the functions its module exports.
//
// A release advertises its export table through the ManifestAsset attachment,
// which is the output of `hashbridge exports --format json` for that build.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ManifestAsset is the release attachment that lists a build's exports.
const ManifestAsset = "exports.json"

const (
	defaultRepository = "safedep/hashbridge"
	defaultAPI        = "https://api.github.com"
	defaultTimeout    = 5 * time.Second
)

// Manifest is the export table of one build.
type Manifest struct {
	Module    string   `json:"module"`
	Functions []string `json:"functions"`
}

// Local describes the running build.
type Local struct {
	Version  string
	Manifest Manifest
}

// Report is the outcome of comparing the running build with the latest release.
type Report struct {
	CurrentVersion string `json:"current_version"`
	LatestVersion  string `json:"latest_version"`
	ReleaseURL     string `json:"release_url"`
	// Newer is set when the release version is strictly greater than the
	// running one. Builds without a semantic version never compare as older.
	Newer bool `json:"newer"`

	// Manifest is nil when the release does not publish ManifestAsset.
	Manifest *Manifest `json:"manifest,omitempty"`
	// ModuleRenamed is set when the release loads under a different module name.
	ModuleRenamed bool `json:"module_renamed,omitempty"`
	// Added lists functions the release exports that this build does not.
	Added []string `json:"added,omitempty"`
	// Removed lists functions this build exports that the release dropped.
	Removed []string `json:"removed,omitempty"`
}

// ExportsChanged reports whether the release exports a different set of functions.
func (r *Report) ExportsChanged() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

type Option func(*Client)

// WithAPI points the client at a different releases API root.
func WithAPI(url string) Option {
	return func(c *Client) {
		c.api = strings.TrimRight(url, "/")
	}
}

// WithRepository selects the owner/name repository to query.
func WithRepository(repository string) Option {
	return func(c *Client) {
		c.repository = repository
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// Client reads release metadata from the GitHub releases API.
type Client struct {
	api        string
	repository string
	http       *http.Client
}

// NewClient creates a client for the hashbridge repository.
func NewClient(opts ...Option) *Client {
	c := &Client{
		api:        defaultAPI,
		repository: defaultRepository,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	return c
}

type githubAsset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

type githubRelease struct {
	TagName string        `json:"tag_name"`
	HTMLURL string        `json:"html_url"`
	Assets  []githubAsset `json:"assets"`
}

// Compare fetches the latest release and its manifest and compares both with local.
func (c *Client) Compare(ctx context.Context, local Local) (*Report, error) {
	var latest githubRelease
	if err := c.getJSON(ctx, fmt.Sprintf("%s/repos/%s/releases/latest", c.api, c.repository), &latest); err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}

	report := &Report{
		CurrentVersion: local.Version,
		LatestVersion:  latest.TagName,
		ReleaseURL:     latest.HTMLURL,
		Newer:          newerThan(latest.TagName, local.Version),
	}

	for _, asset := range latest.Assets {
		if asset.Name != ManifestAsset {
			continue
		}

		var manifest Manifest
		if err := c.getJSON(ctx, asset.DownloadURL, &manifest); err != nil {
			return nil, fmt.Errorf("fetching %s of %s: %w", ManifestAsset, latest.TagName, err)
		}

		report.Manifest = &manifest
		report.ModuleRenamed = manifest.Module != local.Manifest.Module
		report.Added, report.Removed = Diff(local.Manifest, manifest)
		break
	}

	return report, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// Diff returns the functions only remote exports and those only local exports,
// each sorted.
func Diff(local, remote Manifest) (added, removed []string) {
	have := make(map[string]bool, len(local.Functions))
	for _, fn := range local.Functions {
		have[fn] = true
	}

	want := make(map[string]bool, len(remote.Functions))
	for _, fn := range remote.Functions {
		want[fn] = true
		if !have[fn] {
			added = append(added, fn)
		}
	}

	for _, fn := range local.Functions {
		if !want[fn] {
			removed = append(removed, fn)
		}
	}

	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}

// newerThan reports whether tag is a strictly greater semantic version than current.
func newerThan(tag, current string) bool {
	tag, current = canonical(tag), canonical(current)
	if tag == "" || current == "" {
		return false
	}
	return semver.Compare(tag, current) > 0
}

// canonical returns v as a canonical "vMAJOR.MINOR.PATCH" string, or "" when v
// is not a semantic version.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
