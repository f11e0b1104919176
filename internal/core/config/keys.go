package config

// Key is one of the closed set of dotted configuration keys the application
// understands. Typed accessors go through this enumeration so callers cannot
// typo a key name.
type Key string

const (
	// KeyRepoPath is the redirect pointer naming the project-scope
	// directory, resolved relative to the machine config file's parent.
	KeyRepoPath Key = "core.repo.path"
	// KeyUserName is the version-control committer name.
	KeyUserName Key = "core.user.name"
	// KeyUserEmail is the version-control committer email.
	KeyUserEmail Key = "core.user.email"
	// KeyLogLevel controls logger verbosity (error|warn|info|debug|trace|off).
	KeyLogLevel Key = "core.log.level"
)

func (k Key) String() string {
	return string(k)
}

// KnownKeys lists every recognized key.
func KnownKeys() []Key {
	return []Key{KeyRepoPath, KeyUserName, KeyUserEmail, KeyLogLevel}
}

// ParseKey maps a dotted string to its recognized key.
func ParseKey(s string) (Key, bool) {
	for _, k := range KnownKeys() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
