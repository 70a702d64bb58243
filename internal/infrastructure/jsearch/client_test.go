package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"quickhire/internal/application/common"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Options{
		BaseURL:  serverURL,
		APIKey:   "test-key",
		APIHost:  "jsearch.p.rapidapi.com",
		NumPages: 5,
		Timeout:  2 * time.Second,
	})
}

func TestClient_SearchNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("num_pages"))
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "jsearch.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"job_id":"1","job_title":"Go Engineer","employer_name":"Acme","employer_logo":"https://acme.test/logo.png","job_city":"Berlin","job_employment_type":"Contract","job_apply_link":"https://acme.test/apply","job_description":"Build things","job_highlights":{"Qualifications":["Go"],"Responsibilities":["Ship"]}},
			{"job_id":"2","job_title":"Backend Dev","employer_name":"Globex"}
		]}`))
	}))
	defer server.Close()

	jobs, err := newTestClient(server.URL).Search(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Go Engineer", jobs[0].Title)
	assert.Equal(t, "https://acme.test/logo.png", jobs[0].EmployerLogo)
	assert.Equal(t, "Berlin", jobs[0].City)
	assert.Equal(t, "Contract", jobs[0].EmploymentType)
	assert.Equal(t, []string{"Go"}, jobs[0].Highlights.Qualifications)

	// Missing fields are filled with fixed defaults.
	assert.Equal(t, defaultEmployerLogo, jobs[1].EmployerLogo)
	assert.Equal(t, defaultEmploymentType, jobs[1].EmploymentType)
	assert.Equal(t, defaultCity, jobs[1].City)
}

func TestClient_SearchMissingKeyIsMisconfigured(t *testing.T) {
	upstreamCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, APIKey: ""})
	_, err := client.Search(context.Background(), "golang")
	assert.ErrorIs(t, err, common.ErrMisconfigured)
	assert.Zero(t, upstreamCalls, "a misconfigured client must not call upstream")
}

func TestClient_SearchUpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := newTestClient(server.URL).Search(context.Background(), "golang")
			assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
		})
	}
}

func TestClient_SearchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 20 * time.Millisecond,
	})
	_, err := client.Search(context.Background(), "golang")
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
}

func TestClient_SearchEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	jobs, err := newTestClient(server.URL).Search(context.Background(), "golang")
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
