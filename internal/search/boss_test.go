package search

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoss(t *testing.T, cred Credentials, handler http.HandlerFunc) *Boss {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	y := NewBoss(cred, srv.Client())
	y.baseURL = srv.URL
	y.nonce = func() string { return "fixednonce" }
	y.now = func() time.Time { return time.Unix(1346184000, 0) }
	return y
}

func TestBossSearchResults(t *testing.T) {
	var got map[string]string
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"q":                      q.Get("q"),
			"count":                  q.Get("count"),
			"format":                 q.Get("format"),
			"type":                   q.Get("type"),
			"oauth_version":          q.Get("oauth_version"),
			"oauth_nonce":            q.Get("oauth_nonce"),
			"oauth_timestamp":        q.Get("oauth_timestamp"),
			"oauth_consumer_key":     q.Get("oauth_consumer_key"),
			"oauth_signature_method": q.Get("oauth_signature_method"),
			"oauth_signature":        q.Get("oauth_signature"),
		}
		w.Write([]byte(`{"bossresponse":{"web":{"results":[{"url":"http://x"},{"url":"http://y"}]}}}`))
	})

	urls, err := y.Search(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x", "http://y"}, urls)

	assert.Equal(t, `"hello world"`, got["q"])
	assert.Equal(t, "5", got["count"])
	assert.Equal(t, "json", got["format"])
	assert.Equal(t, "html,text,pdf", got["type"])
	assert.Equal(t, "1.0", got["oauth_version"])
	assert.Equal(t, "fixednonce", got["oauth_nonce"])
	assert.Equal(t, "1346184000", got["oauth_timestamp"])
	assert.Equal(t, "ck", got["oauth_consumer_key"])
	assert.Equal(t, "HMAC-SHA1", got["oauth_signature_method"])
	assert.NotEmpty(t, got["oauth_signature"])
}

func TestBossSpacesEncodedAsPercent20(t *testing.T) {
	var rawQuery string
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	})

	_, err := y.Search(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Contains(t, rawQuery, "%20")
	assert.NotContains(t, rawQuery, "+")
}

func TestBossEmptyResults(t *testing.T) {
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bossresponse":{"web":{"results":[]}}}`))
	})

	urls, err := y.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestBossMissingShapeIsZeroResults(t *testing.T) {
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"somethingelse":{}}`))
	})

	urls, err := y.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestBossServerError(t *testing.T) {
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("signature mismatch"))
	})

	_, err := y.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Yahoo! BOSS Error:")
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "signature mismatch")
}

func TestBossBadJSON(t *testing.T) {
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("oops"))
	})

	_, err := y.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON could not be decoded")
}

func TestBossGzipBody(t *testing.T) {
	payload := `{"bossresponse":{"web":{"results":[{"url":"http://x"}]}}}`
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte(payload))
		gz.Close()
	})

	urls, err := y.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x"}, urls)
}

func TestBossErrorBodyExcerptIsBounded(t *testing.T) {
	huge := make([]byte, 10*maxErrBody)
	for i := range huge {
		huge[i] = 'x'
	}
	y := newTestBoss(t, Credentials{"key": "ck", "secret": "cs"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write(huge)
	})

	_, err := y.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Less(t, len(err.Error()), 2*maxErrBody)
}
