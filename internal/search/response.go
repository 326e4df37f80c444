package search

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
)

// maxErrBody bounds the response excerpt included in error messages.
const maxErrBody = 500

// fetch issues the request and returns the response body, handling
// gzip-encoded payloads itself. Transport failures and non-200
// statuses come back as QueryErrors prefixed with the engine name.
func fetch(client *http.Client, req *http.Request, engine string) ([]byte, error) {
	// Asking for gzip explicitly keeps net/http from transparently
	// decompressing, so the content-encoding header reaches us.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := client.Do(req)
	if err != nil {
		return nil, queryErrorf(engine, "%v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, queryErrorf(engine, "%v", err)
	}

	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, queryErrorf(engine, "%v", err)
		}
		body, err = io.ReadAll(gz)
		if err != nil {
			return nil, queryErrorf(engine, "%v", err)
		}
	}

	if resp.StatusCode != http.StatusOK {
		excerpt := body
		if len(excerpt) > maxErrBody {
			excerpt = excerpt[:maxErrBody]
		}
		return nil, queryErrorf(engine, "got response code '%d':\n%s", resp.StatusCode, excerpt)
	}

	return body, nil
}
