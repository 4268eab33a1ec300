// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"strings"
	"time"

	"github.com/okigami/repoctl/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// FakeExecutor is a test double for domain.CommandExecutor.
// It records every CommandSpec and replays queued results in order.
// Fields are ordered to minimize memory padding.
type FakeExecutor struct {
	Specs       []*domain.CommandSpec // every spec passed to Execute
	Interactive []*domain.CommandSpec // every spec passed to ExecuteInteractive
	Results     []FakeResult          // replayed in order; exhausted queue yields empty success
	ExecErr     error                 // returned from every Execute when set
}

// FakeResult is one queued Execute outcome.
type FakeResult struct {
	Output string
	Err    error
}

// NewFakeExecutor creates a FakeExecutor with no queued results.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{}
}

// Queue appends a successful result with the given output.
func (f *FakeExecutor) Queue(output string) *FakeExecutor {
	f.Results = append(f.Results, FakeResult{Output: output})
	return f
}

// QueueErr appends a failed result.
func (f *FakeExecutor) QueueErr(err error) *FakeExecutor {
	f.Results = append(f.Results, FakeResult{Err: err})
	return f
}

// QueueCommandError appends a non-zero-exit result carrying output.
func (f *FakeExecutor) QueueCommandError(output string, exitCode int) *FakeExecutor {
	f.Results = append(f.Results, FakeResult{Err: &domain.CommandError{
		Result: domain.NewCommandResult([]byte(output), exitCode),
	}})
	return f
}

// Execute records the spec and replays the next queued result.
func (f *FakeExecutor) Execute(spec *domain.CommandSpec) (*domain.CommandResult, error) {
	f.Specs = append(f.Specs, spec)
	if f.ExecErr != nil {
		return nil, f.ExecErr
	}
	if len(f.Results) == 0 {
		return domain.NewCommandResult(nil, 0), nil
	}
	next := f.Results[0]
	f.Results = f.Results[1:]
	if next.Err != nil {
		if cmdErr, ok := domain.AsCommandError(next.Err); ok && cmdErr.Spec == nil {
			cmdErr.Spec = spec
		}
		return nil, next.Err
	}
	return domain.NewCommandResult([]byte(next.Output), 0), nil
}

// ExecuteInteractive records the spec.
func (f *FakeExecutor) ExecuteInteractive(spec *domain.CommandSpec) error {
	f.Interactive = append(f.Interactive, spec)
	return f.ExecErr
}

// LastSpec returns the most recently executed spec, or nil.
func (f *FakeExecutor) LastSpec() *domain.CommandSpec {
	if len(f.Specs) == 0 {
		return nil
	}
	return f.Specs[len(f.Specs)-1]
}

// MockGit is a test double for domain.Git.
// Fields are ordered to minimize memory padding.
type MockGit struct {
	Root            string
	Branch          string
	ResolvedCommits map[string]string // ref -> hash; unknown refs error
	Calls           []string          // operation log, e.g. "reset-hard abc123"
	ResolveErr      error
	CheckoutErr     error
	ResetErr        error
	AddErr          error
	CommitErr       error
	PushErr         error
	Dirty           bool
}

// NewMockGit creates a MockGit that resolves every ref to itself.
func NewMockGit() *MockGit {
	return &MockGit{Root: "/repo", Branch: "main"}
}

// RepoRoot returns the configured root.
func (m *MockGit) RepoRoot() string { return m.Root }

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch() (string, error) { return m.Branch, nil }

// ResolveCommit resolves a ref using the configured map, or echoes the
// ref when no map is set.
func (m *MockGit) ResolveCommit(ref string) (string, error) {
	if m.ResolveErr != nil {
		return "", m.ResolveErr
	}
	if m.ResolvedCommits == nil {
		return ref, nil
	}
	hash, ok := m.ResolvedCommits[ref]
	if !ok {
		return "", domain.ErrCommitNotFound
	}
	return hash, nil
}

// HasUncommittedChanges returns the configured dirty state.
func (m *MockGit) HasUncommittedChanges() (bool, error) { return m.Dirty, nil }

// CheckoutFiles records the call.
func (m *MockGit) CheckoutFiles(commit string, paths []string) error {
	m.Calls = append(m.Calls, "checkout "+commit)
	return m.CheckoutErr
}

// ResetHard records the call.
func (m *MockGit) ResetHard(commit string) error {
	m.Calls = append(m.Calls, "reset-hard "+commit)
	return m.ResetErr
}

// AddAll records the call.
func (m *MockGit) AddAll() error {
	m.Calls = append(m.Calls, "add-all")
	return m.AddErr
}

// Commit records the call.
func (m *MockGit) Commit(message string) error {
	m.Calls = append(m.Calls, "commit "+message)
	return m.CommitErr
}

// Push records the call.
func (m *MockGit) Push(remote, branch string, force, setUpstream bool) error {
	m.Calls = append(m.Calls, "push "+remote+" "+branch)
	return m.PushErr
}

// CreateBranch records the call.
func (m *MockGit) CreateBranch(name, start string) error {
	m.Calls = append(m.Calls, "branch-create "+name)
	return nil
}

// DeleteBranch records the call.
func (m *MockGit) DeleteBranch(name string, force bool) error {
	m.Calls = append(m.Calls, "branch-delete "+name)
	return nil
}

// RenameBranch records the call.
func (m *MockGit) RenameBranch(oldName, newName string) error {
	m.Calls = append(m.Calls, "branch-rename "+oldName+" "+newName)
	return nil
}

// Ensure mocks satisfy their ports.
var (
	_ domain.CommandExecutor = (*FakeExecutor)(nil)
	_ domain.Git             = (*MockGit)(nil)
	_ domain.Clock           = (*MockClock)(nil)
)

// MockHosting is a test double for domain.Hosting.
// Fields are ordered to minimize memory padding.
type MockHosting struct {
	Releases      []domain.Release
	Runs          []domain.WorkflowRun
	DeletedRuns   []int64
	Session       *domain.Session
	Secrets       map[string]string
	CreateOut     string
	Calls         []string
	CreateErr     error
	DeleteErr     error
	ListErr       error
	DeleteRunErr  error
	SetSecretErr  error
	AuthStatusErr error
}

// NewMockHosting creates a MockHosting with an active session.
func NewMockHosting() *MockHosting {
	return &MockHosting{
		Secrets: make(map[string]string),
		Session: &domain.Session{Host: "github.com", User: "tester", LoggedIn: true},
	}
}

// CreateRelease records the call and returns the configured output.
func (m *MockHosting) CreateRelease(opts domain.ReleaseOptions) (string, error) {
	m.Calls = append(m.Calls, "release-create "+opts.Tag)
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	return m.CreateOut, nil
}

// DeleteRelease records the call.
func (m *MockHosting) DeleteRelease(tag string, deleteTag bool) error {
	m.Calls = append(m.Calls, "release-delete "+tag)
	return m.DeleteErr
}

// ListReleases returns the configured releases.
func (m *MockHosting) ListReleases(limit int) ([]domain.Release, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Releases, nil
}

// ListRuns returns the configured runs, applying the substring filter.
func (m *MockHosting) ListRuns(workflow string, limit int) ([]domain.WorkflowRun, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if workflow == "" {
		return m.Runs, nil
	}
	var filtered []domain.WorkflowRun
	for _, run := range m.Runs {
		if containsFold(run.WorkflowName, workflow) {
			filtered = append(filtered, run)
		}
	}
	return filtered, nil
}

// DeleteRun records the deleted run ID.
func (m *MockHosting) DeleteRun(id int64) error {
	if m.DeleteRunErr != nil {
		return m.DeleteRunErr
	}
	m.DeletedRuns = append(m.DeletedRuns, id)
	return nil
}

// ViewRun returns a canned summary.
func (m *MockHosting) ViewRun(id int64) (string, error) {
	return "run view", nil
}

// SetSecret stores the secret value.
func (m *MockHosting) SetSecret(name, value string) (string, error) {
	if m.SetSecretErr != nil {
		return "", m.SetSecretErr
	}
	m.Secrets[name] = value
	return "set secret " + name, nil
}

// DeleteSecret removes the secret.
func (m *MockHosting) DeleteSecret(name string) error {
	delete(m.Secrets, name)
	return nil
}

// AuthLogin records the call.
func (m *MockHosting) AuthLogin(host string) error {
	m.Calls = append(m.Calls, "auth-login "+host)
	return nil
}

// AuthStatus returns the configured session.
func (m *MockHosting) AuthStatus() (*domain.Session, error) {
	if m.AuthStatusErr != nil {
		return nil, m.AuthStatusErr
	}
	return m.Session, nil
}

// CreateRepo records the call.
func (m *MockHosting) CreateRepo(opts domain.RepoCreateOptions) (string, error) {
	m.Calls = append(m.Calls, "repo-create "+opts.Name)
	return m.CreateOut, nil
}

// CloneRepo records the call.
func (m *MockHosting) CloneRepo(nameWithOwner, dir string) error {
	m.Calls = append(m.Calls, "repo-clone "+nameWithOwner)
	return nil
}

var _ domain.Hosting = (*MockHosting)(nil)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, defaulting when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the entry.
func (NopLogger) Debug(category, msg string) {}

// Info discards the entry.
func (NopLogger) Info(category, msg string) {}

// Warn discards the entry.
func (NopLogger) Warn(category, msg string) {}

// Error discards the entry.
func (NopLogger) Error(category, msg string) {}

// MaskSecret discards the registration.
func (NopLogger) MaskSecret(secret string) {}

var _ domain.Logger = NopLogger{}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
