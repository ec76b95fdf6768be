package bugzilla

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielolaszy/bzquery/internal/config"
	"github.com/danielolaszy/bzquery/pkg/models"
	bz "github.com/eparis/bugzilla"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  string
		wantError bool
	}{
		{name: "Bare hostname", input: "bugzilla.redhat.com", expected: "https://bugzilla.redhat.com"},
		{name: "Full URL kept", input: "http://localhost:8080", expected: "http://localhost:8080"},
		{name: "Trailing slash trimmed", input: "https://bugzilla.example.com/", expected: "https://bugzilla.example.com"},
		{name: "Whitespace trimmed", input: "  bugzilla.redhat.com ", expected: "https://bugzilla.redhat.com"},
		{name: "Empty", input: "", wantError: true},
		{name: "Missing host", input: "https://", wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Endpoint(tc.input)
			if tc.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestToQuery(t *testing.T) {
	spec := models.QuerySpec{
		models.FieldProduct:      "OpenShift Container Platform",
		models.FieldComponent:    "Networking",
		models.FieldSubComponent: "ovn-kubernetes",
		models.FieldStatus:       "NEW",
	}

	q := ToQuery(spec)

	assert.Equal(t, []string{"OpenShift Container Platform"}, q.Product)
	assert.Equal(t, []string{"Networking"}, q.Component)
	assert.Equal(t, []string{"NEW"}, q.Status)
	require.Len(t, q.Advanced, 1)
	assert.Equal(t, "rh_sub_components", q.Advanced[0].Field)
	assert.Equal(t, "equals", q.Advanced[0].Op)
	assert.Equal(t, "ovn-kubernetes", q.Advanced[0].Value)
}

func TestToQueryOmitsEmptyFields(t *testing.T) {
	q := ToQuery(models.QuerySpec{models.FieldProduct: "OCP"})

	assert.Equal(t, []string{"OCP"}, q.Product)
	assert.Empty(t, q.Component)
	assert.Empty(t, q.Status)
	assert.Empty(t, q.Advanced)
}

func TestToModel(t *testing.T) {
	bug := &bz.Bug{
		ID:         1111,
		Product:    "OCP",
		AssignedTo: "a@x.com",
		Component:  []string{"Networking", "Installer"},
		Status:     "NEW",
		Summary:    "crash on startup",
	}

	assert.Equal(t, models.Bug{
		ID:         1111,
		Product:    "OCP",
		AssignedTo: "a@x.com",
		Component:  "Networking, Installer",
		Status:     "NEW",
		Resolution: "",
		Summary:    "crash on startup",
	}, ToModel(bug))
}

func TestClientSearch(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bugs":[
			{"id":2222,"product":"OCP","assigned_to":"b@x.com","component":["Networking"],"status":"NEW","resolution":"","summary":"second"},
			{"id":1111,"product":"OCP","assigned_to":"a@x.com","component":["Networking"],"status":"NEW","resolution":"","summary":"first"}
		]}`))
	}))
	defer server.Close()

	client, err := NewClient(config.BugzillaConfig{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, server.URL, client.Endpoint())

	bugs, err := client.Search(context.Background(), models.QuerySpec{models.FieldProduct: "OCP"})
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	assert.Equal(t, 1, requests)

	// Order is whatever the service returned.
	assert.Equal(t, 2222, bugs[0].ID)
	assert.Equal(t, "b@x.com", bugs[0].AssignedTo)
	assert.Equal(t, 1111, bugs[1].ID)
	assert.Equal(t, "first", bugs[1].Summary)
}

func TestClientSearchServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(config.BugzillaConfig{URL: server.URL})
	require.NoError(t, err)

	bugs, err := client.Search(context.Background(), models.QuerySpec{models.FieldProduct: "OCP"})
	assert.Error(t, err)
	assert.Nil(t, bugs)
}

func TestClientSearchCancelledContext(t *testing.T) {
	client, err := NewClient(config.BugzillaConfig{URL: "bugzilla.invalid"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Search(ctx, models.QuerySpec{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient(config.BugzillaConfig{URL: ""})
	assert.Error(t, err)
}
