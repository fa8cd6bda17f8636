package util

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dixieflatline76/Cropper/config"
	"github.com/google/go-github/v63/github"
	"golang.org/x/mod/semver"
)

const (
	githubOwner = "dixieflatline76"
	githubRepo  = config.AppName
)

// CheckForUpdatesResult holds the outcome of the update check.
type CheckForUpdatesResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	ReleaseNotes    string
}

// CheckForUpdates asks GitHub for the latest stable release and compares it
// with config.AppVersion. A nil client uses http.DefaultClient.
func CheckForUpdates(ctx context.Context, httpClient *http.Client) (*CheckForUpdatesResult, error) {
	client := github.NewClient(httpClient)

	release, _, err := client.Repositories.GetLatestRelease(ctx, githubOwner, githubRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest GitHub release: %w", err)
	}

	current := canonicalVersion(config.AppVersion)
	latest := canonicalVersion(release.GetTagName())

	return &CheckForUpdatesResult{
		// Development builds carry no version and never prompt.
		UpdateAvailable: semver.IsValid(current) && semver.Compare(latest, current) > 0,
		CurrentVersion:  current,
		LatestVersion:   latest,
		ReleaseURL:      release.GetHTMLURL(),
		ReleaseNotes:    release.GetBody(),
	}, nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
