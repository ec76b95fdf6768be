// Package bugzilla provides functionality for searching a Bugzilla instance.
package bugzilla

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/danielolaszy/bzquery/internal/config"
	"github.com/danielolaszy/bzquery/internal/logging"
	"github.com/danielolaszy/bzquery/pkg/models"
	bz "github.com/eparis/bugzilla"
)

// subComponentField is the Red Hat Bugzilla search field for sub-components.
const subComponentField = "rh_sub_components"

// Client encapsulates the Bugzilla API client.
type Client struct {
	client   bz.Client
	endpoint string
}

// NewClient creates a Bugzilla client for the configured host.
// A bare hostname such as "bugzilla.redhat.com" is turned into an https endpoint.
func NewClient(cfg config.BugzillaConfig) (*Client, error) {
	endpoint, err := Endpoint(cfg.URL)
	if err != nil {
		return nil, err
	}

	apiKey := cfg.APIKey
	logging.Debug("bugzilla configuration",
		"endpoint", endpoint,
		"api_key", logging.MaskSensitive(apiKey))

	return &Client{
		client:   bz.NewClient(func() []byte { return []byte(apiKey) }, endpoint),
		endpoint: endpoint,
	}, nil
}

// Endpoint normalizes a configured host or URL into a Bugzilla base URL
// without a trailing slash.
func Endpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("bugzilla url is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid bugzilla url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid bugzilla url %q: missing host", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Endpoint returns the base URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search runs the query and returns every matching bug in the order Bugzilla
// returned them. Errors from the Bugzilla library are returned unchanged.
func (c *Client) Search(ctx context.Context, spec models.QuerySpec) ([]models.Bug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bugs, err := c.client.Search(ToQuery(spec))
	if err != nil {
		return nil, err
	}

	result := make([]models.Bug, 0, len(bugs))
	for _, bug := range bugs {
		if bug == nil {
			continue
		}
		result = append(result, ToModel(bug))
	}

	logging.Debug("bugzilla search complete",
		"endpoint", c.endpoint,
		"count", len(result))

	return result, nil
}

// ToQuery converts a QuerySpec into a Bugzilla search query.
func ToQuery(spec models.QuerySpec) bz.Query {
	var q bz.Query
	if v := spec.Product(); v != "" {
		q.Product = []string{v}
	}
	if v := spec.Component(); v != "" {
		q.Component = []string{v}
	}
	if v := spec.Status(); v != "" {
		q.Status = []string{v}
	}
	if v := spec.SubComponent(); v != "" {
		q.Advanced = append(q.Advanced, bz.AdvancedQuery{
			Field: subComponentField,
			Op:    "equals",
			Value: v,
		})
	}
	return q
}

// ToModel converts a Bugzilla API bug into our internal model.
func ToModel(bug *bz.Bug) models.Bug {
	return models.Bug{
		ID:         bug.ID,
		Product:    bug.Product,
		AssignedTo: bug.AssignedTo,
		Component:  strings.Join(bug.Component, ", "),
		Status:     bug.Status,
		Resolution: bug.Resolution,
		Summary:    bug.Summary,
	}
}
