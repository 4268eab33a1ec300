// Package gh adapts the gh CLI to the domain.Hosting port.
//
// Every operation is a parameter substitution into a documented gh
// command line, executed through the command dispatcher; gh's text
// output is treated as opaque except where noted.
package gh

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okigami/repoctl/internal/domain"
)

const (
	releaseJSONFields = "tagName,name,isDraft,isPrerelease,createdAt,publishedAt"
	runJSONFields     = "databaseId,displayTitle,workflowName,status,conclusion,headBranch,createdAt"
)

// Client implements domain.Hosting using the gh CLI.
type Client struct {
	executor domain.CommandExecutor
	dir      string // repository directory; may be empty for repo/auth commands
}

// NewClient creates a new hosting client operating in dir.
func NewClient(executor domain.CommandExecutor, dir string) *Client {
	return &Client{executor: executor, dir: dir}
}

// Ensure Client implements domain.Hosting.
var _ domain.Hosting = (*Client)(nil)

// CreateRelease creates a release and uploads any assets.
// Asset paths are checked before gh is invoked so an invalid list
// aborts without touching the hosting service.
func (c *Client) CreateRelease(opts domain.ReleaseOptions) (string, error) {
	if opts.Tag == "" {
		return "", domain.ErrEmptyTag
	}
	for _, asset := range opts.Assets {
		if _, err := os.Stat(asset); err != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, asset)
		}
	}

	args := []string{"release", "create", opts.Tag}
	args = append(args, opts.Assets...)
	title := opts.Title
	if title == "" {
		title = opts.Tag
	}
	args = append(args, "--title", title)
	switch {
	case opts.Notes != "":
		args = append(args, "--notes", opts.Notes)
	case opts.GenerateNotes:
		args = append(args, "--generate-notes")
	}
	if opts.Draft {
		args = append(args, "--draft")
	}
	if opts.Prerelease {
		args = append(args, "--prerelease")
	}
	if opts.Target != "" {
		args = append(args, "--target", opts.Target)
	}

	res, err := c.executor.Execute(domain.NewGHCommand(c.dir, args...))
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

// DeleteRelease deletes a release and, when deleteTag is set, its tag.
// When the release does not exist but deleteTag is set, it falls back
// to deleting only the tag, so a leftover tag can still be cleaned up.
func (c *Client) DeleteRelease(tag string, deleteTag bool) error {
	if tag == "" {
		return domain.ErrEmptyTag
	}
	args := []string{"release", "delete", tag, "--yes"}
	if deleteTag {
		args = append(args, "--cleanup-tag")
	}
	_, err := c.executor.Execute(domain.NewGHCommand(c.dir, args...))
	if err == nil {
		return nil
	}
	cmdErr, ok := domain.AsCommandError(err)
	if !ok || !isNotFound(cmdErr.Result) {
		return err
	}
	if deleteTag {
		return c.deleteTagRef(tag)
	}
	return fmt.Errorf("%w: %s", domain.ErrReleaseNotFound, tag)
}

// deleteTagRef deletes a remote tag ref via the hosting API.
func (c *Client) deleteTagRef(tag string) error {
	spec := domain.NewGHCommand(c.dir,
		"api", "--method", "DELETE", "repos/{owner}/{repo}/git/refs/tags/"+tag)
	_, err := c.executor.Execute(spec)
	return err
}

// isNotFound matches fragments of the gh CLI's natural-language error
// text. Known limitation: the wording is not a stable interface and
// may change across gh versions.
func isNotFound(res *domain.CommandResult) bool {
	if res == nil {
		return false
	}
	return res.Contains("release not found") ||
		res.Contains("Not Found") ||
		res.Contains("HTTP 404")
}

// ListReleases lists releases, newest first.
func (c *Client) ListReleases(limit int) ([]domain.Release, error) {
	spec := domain.NewGHCommand(c.dir,
		"release", "list", "--limit", strconv.Itoa(limit), "--json", releaseJSONFields)
	res, err := c.executor.Execute(spec)
	if err != nil {
		return nil, err
	}
	var releases []domain.Release
	if err := json.Unmarshal([]byte(res.Text()), &releases); err != nil {
		return nil, fmt.Errorf("parse release list: %w", err)
	}
	return releases, nil
}

// ListRuns lists workflow runs, newest first. A non-empty workflow
// filters by case-insensitive workflow-name substring.
func (c *Client) ListRuns(workflow string, limit int) ([]domain.WorkflowRun, error) {
	spec := domain.NewGHCommand(c.dir,
		"run", "list", "--limit", strconv.Itoa(limit), "--json", runJSONFields)
	res, err := c.executor.Execute(spec)
	if err != nil {
		return nil, err
	}
	var runs []domain.WorkflowRun
	if err := json.Unmarshal([]byte(res.Text()), &runs); err != nil {
		return nil, fmt.Errorf("parse run list: %w", err)
	}
	if workflow == "" {
		return runs, nil
	}
	needle := strings.ToLower(workflow)
	var filtered []domain.WorkflowRun
	for _, run := range runs {
		if strings.Contains(strings.ToLower(run.WorkflowName), needle) {
			filtered = append(filtered, run)
		}
	}
	return filtered, nil
}

// DeleteRun deletes a single workflow run.
func (c *Client) DeleteRun(id int64) error {
	spec := domain.NewGHCommand(c.dir, "run", "delete", strconv.FormatInt(id, 10))
	_, err := c.executor.Execute(spec)
	if err != nil {
		if cmdErr, ok := domain.AsCommandError(err); ok && isNotFound(cmdErr.Result) {
			return fmt.Errorf("%w: %d", domain.ErrRunNotFound, id)
		}
	}
	return err
}

// ViewRun returns the hosting CLI's summary of a run.
func (c *Client) ViewRun(id int64) (string, error) {
	spec := domain.NewGHCommand(c.dir, "run", "view", strconv.FormatInt(id, 10))
	res, err := c.executor.Execute(spec)
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

// SetSecret sets an actions secret. The plaintext value never appears
// in the returned output or in any error: both are redacted before
// they can reach a console or log.
func (c *Client) SetSecret(name, value string) (string, error) {
	if name == "" {
		return "", domain.ErrEmptySecretName
	}
	spec := domain.NewGHCommand(c.dir, "secret", "set", name, "--body", value)
	res, err := c.executor.Execute(spec)
	if err != nil {
		if cmdErr, ok := domain.AsCommandError(err); ok {
			redactResult(cmdErr.Result, value)
		}
		return "", err
	}
	return domain.Redact(res.Text(), value), nil
}

// redactResult masks the secret in captured output lines in place.
func redactResult(res *domain.CommandResult, secret string) {
	if res == nil {
		return
	}
	for i, line := range res.Lines {
		res.Lines[i] = domain.Redact(line, secret)
	}
}

// DeleteSecret deletes an actions secret.
func (c *Client) DeleteSecret(name string) error {
	if name == "" {
		return domain.ErrEmptySecretName
	}
	_, err := c.executor.Execute(domain.NewGHCommand(c.dir, "secret", "delete", name))
	return err
}

// AuthLogin runs the interactive login flow. Credential storage is
// entirely gh's concern; repoctl only triggers the flow.
func (c *Client) AuthLogin(host string) error {
	args := []string{"auth", "login"}
	if host != "" {
		args = append(args, "--hostname", host)
	}
	return c.executor.ExecuteInteractive(domain.NewGHCommand("", args...))
}

// AuthStatus reports the current credential state. A non-zero exit
// from gh means no active login, not a failure of this operation.
func (c *Client) AuthStatus() (*domain.Session, error) {
	res, err := c.executor.Execute(domain.NewGHCommand("", "auth", "status"))
	if err != nil {
		if cmdErr, ok := domain.AsCommandError(err); ok && cmdErr.Result != nil {
			return parseAuthStatus(cmdErr.Result), nil
		}
		return nil, err
	}
	return parseAuthStatus(res), nil
}

// parseAuthStatus extracts host and account from gh's status text,
// e.g. "✓ Logged in to github.com account octocat (keyring)".
// Like isNotFound, this leans on wording gh does not guarantee.
func parseAuthStatus(res *domain.CommandResult) *domain.Session {
	for _, line := range res.Lines {
		idx := strings.Index(line, "Logged in to ")
		if idx < 0 {
			continue
		}
		fields := strings.Fields(line[idx:])
		session := &domain.Session{LoggedIn: true}
		// fields: ["Logged" "in" "to" <host> "account" <user> ...]
		if len(fields) > 3 {
			session.Host = fields[3]
		}
		if len(fields) > 5 {
			session.User = fields[5]
		}
		return session
	}
	return &domain.Session{LoggedIn: false}
}

// CreateRepo creates a repository on the hosting service.
func (c *Client) CreateRepo(opts domain.RepoCreateOptions) (string, error) {
	if opts.Name == "" {
		return "", fmt.Errorf("repository name cannot be empty")
	}
	args := []string{"repo", "create", opts.Name}
	if opts.Private {
		args = append(args, "--private")
	} else {
		args = append(args, "--public")
	}
	if opts.Description != "" {
		args = append(args, "--description", opts.Description)
	}
	if opts.Clone {
		args = append(args, "--clone")
	}
	res, err := c.executor.Execute(domain.NewGHCommand("", args...))
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

// CloneRepo clones a hosted repository into dir.
func (c *Client) CloneRepo(nameWithOwner, dir string) error {
	args := []string{"repo", "clone", nameWithOwner}
	if dir != "" {
		args = append(args, dir)
	}
	_, err := c.executor.Execute(domain.NewGHCommand("", args...))
	return err
}
