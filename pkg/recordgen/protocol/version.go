package protocol

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// APIVersion is the version of the HTTP API served and expected.
const APIVersion = "v1.0.0"

// VersionHeader carries APIVersion on every response.
const VersionHeader = "X-Recordgen-Version"

// IsCompatibleVersion checks if a server version is compatible with the client version.
// Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleVersion(serverVersion, clientVersion string) (bool, error) {
	if !semver.IsValid(serverVersion) {
		return false, fmt.Errorf("invalid server version: %q", serverVersion)
	}
	if !semver.IsValid(clientVersion) {
		return false, fmt.Errorf("invalid client version: %q", clientVersion)
	}

	return semver.Major(serverVersion) == semver.Major(clientVersion), nil
}

// GetCompatibilityError returns a user-friendly message for incompatible versions.
func GetCompatibilityError(serverVersion, clientVersion string) string {
	return fmt.Sprintf(
		"server API version %s is incompatible with client version %s. Required version: %s.x.x",
		serverVersion, clientVersion, semver.Major(clientVersion),
	)
}
