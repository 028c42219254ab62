package directory_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/service/directory"
)

func TestClientFetch(t *testing.T) {
	t.Run("RelativePathWithSelect", func(t *testing.T) {
		var gotPath, gotQuery, gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("$select")
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"value":[{"id":"u1","mail":"u1@example.com"}],"@odata.nextLink":"` + r.Host + `"}`))
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		page, err := client.Fetch(context.Background(), "test-token", "groups/g1/members", []string{"id", "mail"})
		gt.NoError(t, err)
		gt.NotNil(t, page)
		gt.Equal(t, gotPath, "/groups/g1/members")
		gt.Equal(t, gotQuery, "id,mail")
		gt.Equal(t, gotAuth, "Bearer test-token")
		gt.A(t, page.Items).Length(1)
		gt.Equal(t, page.Items[0].ID, "u1")
		gt.Equal(t, page.Items[0].Mail, "u1@example.com")
	})

	t.Run("CursorURLUsedVerbatim", func(t *testing.T) {
		var gotRawQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRawQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"value":[]}`))
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL("https://unused.example.com"))
		cursor := srv.URL + "/groups/g1/members?$skiptoken=abc"
		page, err := client.Fetch(context.Background(), "test-token", cursor, []string{"id", "mail"})
		gt.NoError(t, err)
		gt.NotNil(t, page)

		// Continuation URLs must not be amended with a field selection
		gt.Equal(t, gotRawQuery, "$skiptoken=abc")
		gt.Equal(t, page.NextCursor, "")
	})

	t.Run("SingleObjectResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"g1","displayName":"Compliance Team"}`))
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		page, err := client.Fetch(context.Background(), "test-token", "groups/g1", nil)
		gt.NoError(t, err)
		gt.A(t, page.Items).Length(1)
		gt.Equal(t, page.Items[0].ID, "g1")
		gt.Equal(t, page.Items[0].DisplayName, "Compliance Team")
	})

	t.Run("NextCursorFromListing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"value":[{"id":"u1"}],"@odata.nextLink":"https://example.com/next"}`))
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		page, err := client.Fetch(context.Background(), "test-token", "groups/g1/members", nil)
		gt.NoError(t, err)
		gt.Equal(t, page.NextCursor, "https://example.com/next")
	})

	t.Run("NotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		_, err := client.Fetch(context.Background(), "test-token", "groups/missing", nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryNotFound))
	})

	t.Run("Forbidden", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		_, err := client.Fetch(context.Background(), "test-token", "groups/g1/members", nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryForbidden))
	})

	t.Run("ThrottledWithHint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		_, err := client.Fetch(context.Background(), "test-token", "groups/g1/members", nil)
		gt.Error(t, err)

		var throttled *model.ThrottledError
		gt.True(t, errors.As(err, &throttled))
		gt.Equal(t, throttled.RetryAfter, 7*time.Second)
	})

	t.Run("ThrottledWithoutHint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		_, err := client.Fetch(context.Background(), "test-token", "groups/g1/members", nil)
		gt.Error(t, err)

		var throttled *model.ThrottledError
		gt.True(t, errors.As(err, &throttled))
		gt.Equal(t, throttled.RetryAfter, time.Duration(0))
	})

	t.Run("ServerError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := directory.NewClient(directory.WithBaseURL(srv.URL))
		_, err := client.Fetch(context.Background(), "test-token", "groups/g1/members", nil)
		gt.Error(t, err)
		gt.False(t, errors.Is(err, model.ErrDirectoryNotFound))
		gt.False(t, errors.Is(err, model.ErrDirectoryForbidden))
	})

	t.Run("EmptyToken", func(t *testing.T) {
		client := directory.NewClient()
		_, err := client.Fetch(context.Background(), "", "groups/g1/members", nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNoCredential))
	})
}
