// ABOUTME: SOCKS5 proxy transport support for backend access
// ABOUTME: Builds a DialContext that tunnels requests over SSH+SOCKS5

package api

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	proxy "github.com/cloudfoundry/socks5-proxy"
)

// createSOCKS5DialContextFunc creates a dial function for SSH+SOCKS5 proxy connections.
// Supports format: ssh+socks5://user@host:port?private-key=/path/to/key
func createSOCKS5DialContextFunc(allProxy string) func(ctx context.Context, network, address string) (net.Conn, error) {
	// Strip ssh+ prefix if present
	allProxy = strings.TrimPrefix(allProxy, "ssh+")

	proxyURL, err := url.Parse(allProxy)
	if err != nil {
		slog.Error("Failed to parse WAYFARER_ALL_PROXY URL", "error", err)
		return nil
	}

	queryMap, err := url.ParseQuery(proxyURL.RawQuery)
	if err != nil {
		slog.Error("Failed to parse WAYFARER_ALL_PROXY query params", "error", err)
		return nil
	}

	username := ""
	if proxyURL.User != nil {
		username = proxyURL.User.Username()
	}

	proxySSHKeyPath := queryMap.Get("private-key")
	if proxySSHKeyPath == "" {
		slog.Error("WAYFARER_ALL_PROXY missing required 'private-key' query param")
		return nil
	}

	proxySSHKey, err := os.ReadFile(proxySSHKeyPath)
	if err != nil {
		slog.Error("Failed to read SSH private key", "path", proxySSHKeyPath, "error", err)
		return nil
	}

	socks5Proxy := proxy.NewSocks5Proxy(proxy.NewHostKey(), log.Default(), 1*time.Minute)

	// The SSH handshake is deferred until the first request needs it.
	var (
		dialer proxy.DialFunc
		mut    sync.RWMutex
	)

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		mut.RLock()
		haveDialer := dialer != nil
		mut.RUnlock()

		if haveDialer {
			return dialer(network, address)
		}

		mut.Lock()
		defer mut.Unlock()
		if dialer == nil {
			proxyDialer, err := socks5Proxy.Dialer(username, string(proxySSHKey), proxyURL.Host)
			if err != nil {
				return nil, fmt.Errorf("error creating SOCKS5 dialer: %w", err)
			}
			dialer = proxyDialer
		}
		return dialer(network, address)
	}
}
