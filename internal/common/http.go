// Package common holds shared helpers used across quarry.
package common

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

var (
	globalProxy  string
	globalDialer proxy.Dialer
)

// SetGlobalProxy routes all HTTP clients built afterwards through a
// SOCKS5 proxy.
func SetGlobalProxy(proxyURL string) error {
	if proxyURL == "" {
		return nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return err
	}

	var auth *proxy.Auth
	if u.User != nil {
		password, _ := u.User.Password()
		auth = &proxy.Auth{
			User:     u.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
	if err != nil {
		return err
	}

	globalProxy = proxyURL
	globalDialer = dialer
	return nil
}

// GetGlobalProxy returns the current global proxy URL.
func GetGlobalProxy() string {
	return globalProxy
}

// IsProxyEnabled returns whether a global proxy is configured.
func IsProxyEnabled() bool {
	return globalProxy != "" && globalDialer != nil
}

// DefaultHTTPClient returns the shared client search engines are built
// on. Transport compression stays disabled so a provider's
// content-encoding header reaches the engine untouched.
func DefaultHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  true,
	}

	// Use proxy if configured. The transport prefers DialContext over
	// Dial, so the proxy dialer must replace DialContext or it would
	// never be consulted.
	if IsProxyEnabled() {
		if cd, ok := globalDialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return globalDialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}
