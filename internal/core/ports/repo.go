package ports

// RepoInfo describes a version-control working copy and its configured
// identity.
type RepoInfo struct {
	Path      string
	Remote    string
	RemoteURL string
	User      string
	Email     string
}

// RepoInspector resolves repository information for a filesystem path
// believed to hold a working copy. It fails when the path is not a working
// copy, the conventional remote is missing, or no identity is configured.
type RepoInspector interface {
	Inspect(path string) (RepoInfo, error)
}
