// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"

	Changelog       = "/changelog"
	ChangelogPrefix = "/changelog/"

	Schedule               = "/schedule"
	SchedulePrefix         = "/schedule/"
	ScheduleVersionsPrefix = SchedulePrefix + "v/"
	ScheduleVersionPattern = ScheduleVersionsPrefix + "{version}"
	ScheduleExportsPrefix  = SchedulePrefix + "export/"
	ScheduleExportPattern  = ScheduleExportsPrefix + "{name}"

	APIPrefix     = "/api/v1/"
	APIChangeSets = "/api/v1/changesets"
)

// VersionQueryKey selects a schedule version via query string on the
// schedule page; such requests redirect permanently to the canonical
// versioned path.
const VersionQueryKey = "version"

// FormatQueryKey selects a text rendering of the schedule page.
const FormatQueryKey = "format"

// ScheduleVersion returns the canonical page route for one schedule version.
func ScheduleVersion(version string) string {
	return ScheduleVersionsPrefix + escapeSegment(version)
}

// ScheduleExport returns the download route for one exporter.
func ScheduleExport(name string) string {
	return ScheduleExportsPrefix + escapeSegment(name)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
