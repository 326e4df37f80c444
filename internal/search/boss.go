package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"quarry/internal/common"
)

const bossBaseURL = "http://yboss.yahooapis.com/ysearch/web"

// Boss implements Engine for the Yahoo! BOSS web-search API, which
// authenticates each request with an OAuth 1.0 HMAC-SHA1 signature
// carried in the query string.
type Boss struct {
	client  *http.Client
	cred    Credentials
	baseURL string

	// nonce and now are overridable so signing stays deterministic
	// under test.
	nonce func() string
	now   func() time.Time
}

// NewBoss creates a Yahoo! BOSS engine.
func NewBoss(cred Credentials, client *http.Client) *Boss {
	if client == nil {
		client = common.DefaultHTTPClient()
	}
	return &Boss{
		client:  client,
		cred:    cred,
		baseURL: bossBaseURL,
		nonce:   uuid.NewString,
		now:     time.Now,
	}
}

// Name returns the engine name.
func (y *Boss) Name() string {
	return "Yahoo! BOSS"
}

// Requirements returns the modules the default nonce source needs.
func (y *Boss) Requirements() []string {
	return []string{"github.com/google/uuid"}
}

// Search does a Yahoo! BOSS web search for query and returns result
// URLs ranked by relevance (as determined by Yahoo).
func (y *Boss) Search(ctx context.Context, query string) ([]string, error) {
	params := url.Values{
		"oauth_version":          {"1.0"},
		"oauth_nonce":            {y.nonce()},
		"oauth_timestamp":        {strconv.FormatInt(y.now().Unix(), 10)},
		"oauth_consumer_key":     {y.cred["key"]},
		"oauth_signature_method": {"HMAC-SHA1"},
		"q":                      {`"` + query + `"`},
		"count":                  {"5"},
		"type":                   {"html,text,pdf"},
		"format":                 {"json"},
	}
	base := signatureBase(http.MethodGet, y.baseURL, params)
	params.Set("oauth_signature", signHMACSHA1(base, y.cred["secret"], ""))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+"?"+encodeQuery(params), nil)
	if err != nil {
		return nil, queryErrorf(y.Name(), "%v", err)
	}

	body, err := fetch(y.client, req, y.Name())
	if err != nil {
		return nil, err
	}

	var res struct {
		BossResponse struct {
			Web struct {
				Results []struct {
					URL string `json:"url"`
				} `json:"results"`
			} `json:"web"`
		} `json:"bossresponse"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, queryErrorf(y.Name(), "JSON could not be decoded")
	}

	results := res.BossResponse.Web.Results
	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.URL)
	}
	return urls, nil
}
