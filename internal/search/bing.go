package search

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"quarry/internal/common"
)

const bingBaseURL = "https://api.datamarket.azure.com/Bing"

// Bing implements Engine for the Bing web-search API, which
// authenticates with a static Authorization header derived from the
// account key.
type Bing struct {
	client  *http.Client
	cred    Credentials
	auth    string
	baseURL string
}

// NewBing creates a Bing engine. The Authorization header is kept on
// the instance and set per request, so the client stays untouched and
// can be shared with other engines.
func NewBing(cred Credentials, client *http.Client) *Bing {
	if client == nil {
		client = common.DefaultHTTPClient()
	}
	key := cred["key"]
	auth := "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+key))
	return &Bing{
		client:  client,
		cred:    cred,
		auth:    auth,
		baseURL: bingBaseURL,
	}
}

// Name returns the engine name.
func (b *Bing) Name() string {
	return "Bing"
}

// Requirements returns no extra modules; Bing needs only the core.
func (b *Bing) Requirements() []string {
	return nil
}

// Search does a Bing web search for query and returns result URLs
// ranked by relevance (as determined by Bing).
func (b *Bing) Search(ctx context.Context, query string) ([]string, error) {
	service := "Search"
	if b.cred["type"] == "searchweb" {
		service = "SearchWeb"
	}

	params := url.Values{
		"$format":          {"json"},
		"$top":             {"5"},
		"Query":            {`'"` + strings.ReplaceAll(query, `"`, "") + `"'`},
		"Market":           {"'en-US'"},
		"Adult":            {"'Off'"},
		"Options":          {"'DisableLocationDetection'"},
		"WebSearchOptions": {"'DisableHostCollapsing+DisableQueryAlterations'"},
	}
	searchURL := b.baseURL + "/" + service + "/Web?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, queryErrorf(b.Name(), "%v", err)
	}
	req.Header.Set("Authorization", b.auth)

	body, err := fetch(b.client, req, b.Name())
	if err != nil {
		return nil, err
	}

	var res struct {
		D struct {
			Results []struct {
				URL string `json:"Url"`
			} `json:"results"`
		} `json:"d"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, queryErrorf(b.Name(), "JSON could not be decoded")
	}

	urls := make([]string, 0, len(res.D.Results))
	for _, r := range res.D.Results {
		urls = append(urls, r.URL)
	}
	return urls, nil
}
