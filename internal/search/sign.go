package search

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strings"
)

// percentEncode applies RFC 3986 percent-encoding with space as %20
// rather than +. Signature base strings are sensitive to the
// difference, so the same encoder is used for signing and for the
// final request URL.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// encodePairs percent-encodes every key/value pair and returns them
// joined with "=", sorted byte-wise.
func encodePairs(params url.Values) []string {
	pairs := make([]string, 0, len(params))
	for k, vs := range params {
		for _, v := range vs {
			pairs = append(pairs, percentEncode(k)+"="+percentEncode(v))
		}
	}
	sort.Strings(pairs)
	return pairs
}

// signatureBase builds the OAuth 1.0 signature base string for a
// request against rawURL with the given parameters.
func signatureBase(method, rawURL string, params url.Values) string {
	normalized := strings.Join(encodePairs(params), "&")
	return strings.ToUpper(method) + "&" + percentEncode(rawURL) + "&" + percentEncode(normalized)
}

// signHMACSHA1 signs base with the consumer secret and token secret
// (empty when no per-user token is in play) and returns the base64
// signature.
func signHMACSHA1(base, consumerSecret, tokenSecret string) string {
	key := percentEncode(consumerSecret) + "&" + percentEncode(tokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// encodeQuery encodes params for the request URL with the same
// encoding the signature was computed over.
func encodeQuery(params url.Values) string {
	return strings.Join(encodePairs(params), "&")
}
