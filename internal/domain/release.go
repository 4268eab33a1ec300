package domain

import "time"

// Release represents a release hosted by the repository-hosting service.
// JSON tags match the gh CLI's --json field names.
type Release struct {
	TagName      string    `json:"tagName" yaml:"tag"`
	Name         string    `json:"name" yaml:"name"`
	IsDraft      bool      `json:"isDraft" yaml:"draft"`
	IsPrerelease bool      `json:"isPrerelease" yaml:"prerelease"`
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at"`
	PublishedAt  time.Time `json:"publishedAt" yaml:"published_at,omitempty"`
}

// ReleaseOptions configures release creation.
// Fields are ordered to minimize memory padding.
type ReleaseOptions struct {
	Tag           string   // release tag (required)
	Title         string   // release title; defaults to the tag
	Notes         string   // release notes body
	Target        string   // target commitish for the tag
	Assets        []string // paths of binary assets to upload
	Draft         bool     // create as draft
	Prerelease    bool     // mark as prerelease
	GenerateNotes bool     // let the hosting service generate notes
}

// WorkflowRun represents a recorded execution of an automated pipeline.
// JSON tags match the gh CLI's --json field names.
type WorkflowRun struct {
	ID           int64     `json:"databaseId" yaml:"id"`
	DisplayTitle string    `json:"displayTitle" yaml:"title"`
	WorkflowName string    `json:"workflowName" yaml:"workflow"`
	Status       string    `json:"status" yaml:"status"`
	Conclusion   string    `json:"conclusion" yaml:"conclusion"`
	HeadBranch   string    `json:"headBranch" yaml:"branch"`
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at"`
}

// RepoCreateOptions configures repository creation on the hosting service.
type RepoCreateOptions struct {
	Name        string // repository name (required)
	Description string
	Private     bool // create as private
	Clone       bool // clone locally after creation
}
