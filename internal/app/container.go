// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/infra/config"
	"github.com/okigami/repoctl/internal/infra/executor"
	"github.com/okigami/repoctl/internal/infra/gh"
	"github.com/okigami/repoctl/internal/infra/git"
	"github.com/okigami/repoctl/internal/infra/logging"
	"github.com/okigami/repoctl/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	RepoRoot string // Root directory of the git repository
	GitDir   string // Path to .git directory
	CtlDir   string // Path to .git/repoctl directory
}

// newConfig creates a new Config from the git client.
func newConfig(gitClient *git.Client) Config {
	return Config{
		RepoRoot: gitClient.RepoRoot(),
		GitDir:   gitClient.GitDir(),
		CtlDir:   domain.CtlDir(gitClient.GitDir()),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	Git          domain.Git
	Hosting      domain.Hosting
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger
	Clock        domain.Clock

	// Pointer fields
	ConfigManager *config.Manager

	// Configuration
	Config Config
}

// New creates a new Container by detecting the git repository from the
// given directory. It fails with domain.ErrNotGitRepository when dir is
// not inside a repository; commands that do not need one handle that
// in main.
func New(dir string) (*Container, error) {
	executorClient := executor.NewClient()

	gitClient, err := git.NewClient(dir, executorClient)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(gitClient)

	configLoader := config.NewLoader(cfg.CtlDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// A broken config file must not block every command
		appConfig = domain.NewDefaultConfig()
	}

	logger := logging.New(cfg.CtlDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Executor:      executorClient,
		Git:           gitClient,
		Hosting:       gh.NewClient(executorClient, cfg.RepoRoot),
		ConfigLoader:  configLoader,
		Logger:        logger,
		Clock:         domain.RealClock{},
		ConfigManager: config.NewManager(cfg.CtlDir),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, gitPort domain.Git, hosting domain.Hosting, loader domain.ConfigLoader, logger domain.Logger) *Container {
	return &Container{
		Git:          gitPort,
		Hosting:      hosting,
		ConfigLoader: loader,
		Logger:       logger,
		Clock:        domain.RealClock{},
		Config:       cfg,
	}
}

// UseCase factory methods

// RevertCommitUseCase returns a new RevertCommit use case.
func (c *Container) RevertCommitUseCase() *usecase.RevertCommit {
	return usecase.NewRevertCommit(c.Git, c.Logger)
}

// CreateReleaseUseCase returns a new CreateRelease use case.
func (c *Container) CreateReleaseUseCase() *usecase.CreateRelease {
	return usecase.NewCreateRelease(c.Hosting, c.ConfigLoader, c.Logger)
}

// DeleteReleaseUseCase returns a new DeleteRelease use case.
func (c *Container) DeleteReleaseUseCase() *usecase.DeleteRelease {
	return usecase.NewDeleteRelease(c.Hosting, c.Logger)
}

// ListReleasesUseCase returns a new ListReleases use case.
func (c *Container) ListReleasesUseCase() *usecase.ListReleases {
	return usecase.NewListReleases(c.Hosting)
}

// ListRunsUseCase returns a new ListRuns use case.
func (c *Container) ListRunsUseCase() *usecase.ListRuns {
	return usecase.NewListRuns(c.Hosting, c.ConfigLoader)
}

// DeleteRunsUseCase returns a new DeleteRuns use case.
func (c *Container) DeleteRunsUseCase() *usecase.DeleteRuns {
	return usecase.NewDeleteRuns(c.Hosting, c.Logger)
}

// SetSecretUseCase returns a new SetSecret use case.
func (c *Container) SetSecretUseCase() *usecase.SetSecret {
	return usecase.NewSetSecret(c.Hosting, c.Logger)
}

// DeleteSecretUseCase returns a new DeleteSecret use case.
func (c *Container) DeleteSecretUseCase() *usecase.DeleteSecret {
	return usecase.NewDeleteSecret(c.Hosting, c.Logger)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Hosting)
}

// AuthStatusUseCase returns a new AuthStatus use case.
func (c *Container) AuthStatusUseCase() *usecase.AuthStatus {
	return usecase.NewAuthStatus(c.Hosting)
}

// CreateRepoUseCase returns a new CreateRepo use case.
func (c *Container) CreateRepoUseCase() *usecase.CreateRepo {
	return usecase.NewCreateRepo(c.Hosting)
}

// CloneRepoUseCase returns a new CloneRepo use case.
func (c *Container) CloneRepoUseCase() *usecase.CloneRepo {
	return usecase.NewCloneRepo(c.Hosting)
}

// PushUseCase returns a new Push use case.
func (c *Container) PushUseCase() *usecase.Push {
	return usecase.NewPush(c.Git, c.ConfigLoader, c.Logger)
}

// ManageBranchUseCase returns a new ManageBranch use case.
func (c *Container) ManageBranchUseCase() *usecase.ManageBranch {
	return usecase.NewManageBranch(c.Git, c.Logger)
}
