package models

// TargetKind identifies what kind of scan scope the user selected.
type TargetKind string

const (
	// TargetOrganization scans every repository of a GitHub organization.
	TargetOrganization TargetKind = "org"
	// TargetUser scans every repository of a GitHub user.
	TargetUser TargetKind = "user"
	// TargetRepository scans a single repository URL.
	TargetRepository TargetKind = "repo"
)

// Target is the user-specified scan scope, supplied once at startup and
// never mutated afterwards.
type Target struct {
	Kind  TargetKind
	Value string
}

// EnumerationOptions control how a Target is expanded into repositories.
type EnumerationOptions struct {
	IncludeForks   bool
	IncludeMembers bool
}
