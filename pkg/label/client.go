package label

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
)

// ghRunner abstracts the gh subprocess invocation so the client can be
// tested without the real binary.
type ghRunner interface {
	Run(args []string) (stdout string, err error)
}

type execGhRunner struct{}

func (execGhRunner) Run(args []string) (string, error) {
	cmd := exec.Command("gh", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", NewError(ErrorTypeGhMissing,
				"gh CLI not found. Please install GitHub CLI: https://cli.github.com/", err)
		}
		if _, ok := err.(*exec.ExitError); ok {
			return "", classifyGhError(stderr.String(), "")
		}
		return "", NewError(ErrorTypeGh, fmt.Sprintf("failed to execute gh: %v", err), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Client is the remote label gateway. Every operation is one blocking
// `gh api` subprocess call; authentication and transport are entirely the
// external tool's concern. The client never retries and never batches.
type Client struct {
	owner  string
	repo   string
	runner ghRunner
}

// NewClient creates a gateway for one owner/repo pair.
func NewClient(owner, repo string) *Client {
	return &Client{owner: owner, repo: repo, runner: execGhRunner{}}
}

// RepoURL returns the owner/repo identifier used in output.
func (c *Client) RepoURL() string {
	return fmt.Sprintf("%s/%s", c.owner, c.repo)
}

func (c *Client) labelsPath() string {
	return fmt.Sprintf("repos/%s/%s/labels", c.owner, c.repo)
}

func (c *Client) labelPath(name string) string {
	return fmt.Sprintf("repos/%s/%s/labels/%s", c.owner, c.repo, url.PathEscape(name))
}

func (c *Client) api(args ...string) (string, error) {
	return c.runner.Run(append([]string{"api"}, args...))
}

// List fetches every label in the repository.
func (c *Client) List() ([]Label, error) {
	out, err := c.api(c.labelsPath())
	if err != nil {
		return nil, err
	}

	var labels []Label
	if err := json.Unmarshal([]byte(out), &labels); err != nil {
		return nil, NewError(ErrorTypeParse, fmt.Sprintf("failed to parse labels: %v", err), err)
	}

	return labels, nil
}

// Get fetches a single label by name.
func (c *Client) Get(name string) (*Label, error) {
	out, err := c.api(c.labelPath(name))
	if err != nil {
		if ghErr, ok := err.(*Error); ok && ghErr.Resource == "" {
			ghErr.Resource = fmt.Sprintf("label %q", name)
		}
		return nil, err
	}

	var label Label
	if err := json.Unmarshal([]byte(out), &label); err != nil {
		return nil, NewError(ErrorTypeParse, fmt.Sprintf("failed to parse label: %v", err), err)
	}

	return &label, nil
}

// Create creates a new label and returns the remote record.
func (c *Client) Create(req CreateRequest) (*Label, error) {
	args := []string{
		c.labelsPath(),
		"-f", "name=" + req.Name,
		"-f", "color=" + req.Color,
	}
	if req.Description != nil {
		args = append(args, "-f", "description="+*req.Description)
	}

	out, err := c.api(args...)
	if err != nil {
		if ghErr, ok := err.(*Error); ok && ghErr.Resource == "" {
			ghErr.Resource = fmt.Sprintf("label %q", req.Name)
		}
		return nil, err
	}

	var created Label
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		return nil, NewError(ErrorTypeParse, fmt.Sprintf("failed to parse created label: %v", err), err)
	}

	return &created, nil
}

// Update patches an existing label. Only the fields present in req are
// sent, so absent fields keep their remote values.
func (c *Client) Update(name string, req UpdateRequest) (*Label, error) {
	args := []string{c.labelPath(name), "-X", "PATCH"}
	if req.NewName != nil {
		args = append(args, "-f", "name="+*req.NewName)
	}
	if req.Color != nil {
		args = append(args, "-f", "color="+*req.Color)
	}
	if req.Description != nil {
		args = append(args, "-f", "description="+*req.Description)
	}

	out, err := c.api(args...)
	if err != nil {
		if ghErr, ok := err.(*Error); ok && ghErr.Resource == "" {
			ghErr.Resource = fmt.Sprintf("label %q", name)
		}
		return nil, err
	}

	var updated Label
	if err := json.Unmarshal([]byte(out), &updated); err != nil {
		return nil, NewError(ErrorTypeParse, fmt.Sprintf("failed to parse updated label: %v", err), err)
	}

	return &updated, nil
}

// Delete removes a label by name.
func (c *Client) Delete(name string) error {
	_, err := c.api(c.labelPath(name), "-X", "DELETE")
	if err != nil {
		if ghErr, ok := err.(*Error); ok && ghErr.Resource == "" {
			ghErr.Resource = fmt.Sprintf("label %q", name)
		}
		return err
	}
	return nil
}

// Ensure Client implements the gateway interface
var _ APIClient = (*Client)(nil)
