package domain

import "time"

// CommandExecutor runs external commands.
//
// Invocations are strictly sequential: no implementation spawns
// concurrent work, and callers must not run two invocations against
// the same repository at the same time, because the underlying tools
// are themselves not designed for concurrent use.
type CommandExecutor interface {
	// Execute runs the command and returns its captured output.
	// A missing binary yields an error wrapping ErrToolNotFound;
	// a non-zero exit yields a *CommandError carrying the output.
	Execute(spec *CommandSpec) (*CommandResult, error)

	// ExecuteInteractive runs a command with stdin/stdout/stderr
	// connected to the terminal (used for interactive login flows).
	ExecuteInteractive(spec *CommandSpec) error
}

// Git provides git operations against a single repository.
type Git interface {
	// RepoRoot returns the repository root directory.
	RepoRoot() string

	// CurrentBranch returns the name of the current branch.
	CurrentBranch() (string, error)

	// ResolveCommit resolves a commitish to a full commit hash.
	// Returns an error wrapping ErrCommitNotFound for unknown refs.
	ResolveCommit(ref string) (string, error)

	// HasUncommittedChanges checks for staged or unstaged changes.
	HasUncommittedChanges() (bool, error)

	// CheckoutFiles restores the listed files' content from a commit
	// into the working tree.
	CheckoutFiles(commit string, paths []string) error

	// ResetHard discards all working-tree and index changes and moves
	// the branch pointer to the given commit.
	ResetHard(commit string) error

	// AddAll stages all working-tree changes.
	AddAll() error

	// Commit records the staged changes with the given message.
	Commit(message string) error

	// Push pushes a branch to a remote.
	Push(remote, branch string, force, setUpstream bool) error

	// CreateBranch creates a branch at the given start point
	// (HEAD when start is empty).
	CreateBranch(name, start string) error

	// DeleteBranch deletes a branch. Force uses -D instead of -d.
	DeleteBranch(name string, force bool) error

	// RenameBranch renames a branch.
	RenameBranch(oldName, newName string) error
}

// Hosting provides repository-hosting operations via the gh CLI.
type Hosting interface {
	// CreateRelease creates a release and uploads any assets.
	// Returns the hosting CLI's output (typically the release URL).
	CreateRelease(opts ReleaseOptions) (string, error)

	// DeleteRelease deletes a release and, when deleteTag is set, its
	// tag. A missing release is not an error when the tag can still
	// be cleaned up.
	DeleteRelease(tag string, deleteTag bool) error

	// ListReleases lists releases, newest first.
	ListReleases(limit int) ([]Release, error)

	// ListRuns lists workflow runs, newest first. A non-empty
	// workflow filters by workflow-name substring.
	ListRuns(workflow string, limit int) ([]WorkflowRun, error)

	// DeleteRun deletes a single workflow run.
	DeleteRun(id int64) error

	// ViewRun returns the hosting CLI's summary of a run.
	ViewRun(id int64) (string, error)

	// SetSecret sets an actions secret. The returned output has the
	// secret plaintext redacted.
	SetSecret(name, value string) (string, error)

	// DeleteSecret deletes an actions secret.
	DeleteSecret(name string) error

	// AuthLogin runs the interactive login flow for a host.
	AuthLogin(host string) error

	// AuthStatus reports the current credential state.
	AuthStatus() (*Session, error)

	// CreateRepo creates a repository on the hosting service.
	CreateRepo(opts RepoCreateOptions) (string, error)

	// CloneRepo clones a hosted repository into dir.
	CloneRepo(nameWithOwner, dir string) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (repo + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Remote  string        `toml:"remote"`  // default push remote
	Release ReleaseConfig `toml:"release"` // [release] settings
	Runs    RunsConfig    `toml:"runs"`    // [runs] settings
	Log     LogConfig     `toml:"log"`     // [log] settings
}

// ReleaseConfig holds release defaults from the [release] section.
type ReleaseConfig struct {
	Draft         bool `toml:"draft"`          // create releases as drafts
	GenerateNotes bool `toml:"generate_notes"` // generate notes by default
}

// RunsConfig holds workflow-run settings from the [runs] section.
type RunsConfig struct {
	Limit int `toml:"limit"` // default list limit
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Remote: "origin",
		Runs:   RunsConfig{Limit: 20},
		Log:    LogConfig{Level: "info"},
	}
}

// Logger writes categorized log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)

	// MaskSecret registers a plaintext value to redact from every
	// subsequent entry.
	MaskSecret(secret string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
