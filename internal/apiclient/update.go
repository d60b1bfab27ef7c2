package apiclient

import (
	SharedModels "appcenter-go/internal/shared"
	"appcenter-go/internal/versioning"
	"context"
)

// CheckUpdate fetches the latest release for q and compares it with
// currentVersionName. Only a strictly newer release is reported; equal
// versions count as latest. An unparseable version on either side returns
// a *cstmerr.VersionParseError.
func (ac *APIClient) CheckUpdate(ctx context.Context, q SharedModels.AppQueryParam, currentVersionName string) (*UpdateCheckResult, error) {
	res, err := ac.LatestRelease(ctx, q)
	if err != nil {
		return nil, err
	}
	latest := res.Message.Data

	newer, err := versioning.IsNewer(latest.Version, currentVersionName)
	if err != nil {
		return nil, err
	}
	ac.logger.Debug("update check", "current", currentVersionName, "latest", latest.Version, "newer", newer)

	if newer {
		return &UpdateCheckResult{Latest: false, Release: &latest}, nil
	}
	return &UpdateCheckResult{Latest: true}, nil
}
