// Package endpoint computes the backend base URL from a prioritized set of
// environment signals. Resolution happens once at startup; every backend
// call for the lifetime of the process uses the resulting address.
//
// The rule chain, in strict priority order:
//
//  1. explicit environment override, used verbatim
//  2. build-time application configuration, used verbatim
//  3. host of the address the development bundle was retrieved from
//  4. host advertised by the development tooling's debugger metadata
//  5. cloud port-forwarding rewrite applied to hosts from rules 3–4
//  6. emulator loopback alias when the runtime reports Android
//  7. literal loopback fallback
//
// Loopback addresses and hosted-tunnel domains are never usable signals in
// rules 3–4: they name the development tool itself, not a reachable backend.
package endpoint

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/acadex/acadex/internal/logging"
)

// FixedPort is the port the backend listens on in every development setup.
const FixedPort = "5000"

// Signals carries the environment inputs the resolver reads. All fields are
// optional; empty values simply fall through to the next rule.
type Signals struct {
	// EnvBaseURL is the explicit override from the process environment.
	EnvBaseURL string
	// ConfigBaseURL comes from build-time application configuration.
	ConfigBaseURL string
	// BundleURL is the address the development bundle was served from,
	// e.g. "http://192.168.1.20:19000".
	BundleURL string
	// DebuggerHost is the "host:port" advertised by development tooling.
	DebuggerHost string
	// Platform is the runtime platform name ("android", "ios", "web", ...).
	Platform string
	// Dev reports whether the client runs in development mode; rules 3–4
	// only apply there.
	Dev bool
}

var tunnelDomains = []string{
	".exp.direct",
	".exp.host",
	".ngrok.io",
	".ngrok-free.app",
}

// forwardedPortRe matches the trailing port encoding of cloud-forwarded
// hostnames, e.g. "myspace-19000" in "myspace-19000.app.github.dev".
var forwardedPortRe = regexp.MustCompile(`-\d+$`)

const forwardingSuffix = ".app.github.dev"

// sanitizeHost extracts hostname and scheme from a host URI that may or may
// not carry a scheme. Malformed input yields ok=false; the resolver never
// propagates parse failures.
func sanitizeHost(hostURI string) (host, scheme string, ok bool) {
	normalized := hostURI
	if !strings.Contains(hostURI, "://") {
		normalized = "http://" + hostURI
	}
	u, err := url.Parse(normalized)
	if err != nil || u.Hostname() == "" {
		return "", "", false
	}
	scheme = u.Scheme
	if scheme != "http" && scheme != "https" {
		scheme = "http"
	}
	return u.Hostname(), scheme, true
}

// usableHost rejects loopback addresses and hosted-tunnel domains.
func usableHost(host string) bool {
	if host == "127.0.0.1" || host == "localhost" {
		return false
	}
	lower := strings.ToLower(host)
	for _, domain := range tunnelDomains {
		if strings.HasSuffix(lower, domain) {
			return false
		}
	}
	return true
}

// bracketIPv6 wraps IPv6 literals so they interpolate into URLs correctly.
func bracketIPv6(host string) string {
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		return "[" + host + "]"
	}
	return host
}

// rewriteForwarded rewrites a cloud-forwarded hostname to target FixedPort
// through its port-encoded subdomain, forcing https. Returns ok=false when
// the host is not a forwarded one.
func rewriteForwarded(host string) (string, bool) {
	lower := strings.ToLower(host)
	if !strings.HasSuffix(lower, forwardingSuffix) {
		return "", false
	}
	name := strings.TrimSuffix(lower, forwardingSuffix)
	if forwardedPortRe.MatchString(name) {
		name = forwardedPortRe.ReplaceAllString(name, "-"+FixedPort)
	} else {
		name = name + "-" + FixedPort
	}
	return "https://" + name + forwardingSuffix, true
}

// baseFromHost combines a usable host with the fixed port, applying the
// cloud-forwarding rewrite when it matches.
func baseFromHost(host, scheme string) string {
	if forwarded, ok := rewriteForwarded(host); ok {
		return forwarded
	}
	return fmt.Sprintf("%s://%s:%s", scheme, bracketIPv6(host), FixedPort)
}

// rule is one independent, short-circuiting step of the chain.
type rule struct {
	name    string
	resolve func(s Signals) (string, bool)
}

var rules = []rule{
	{
		name: "env override",
		resolve: func(s Signals) (string, bool) {
			if s.EnvBaseURL != "" {
				return s.EnvBaseURL, true
			}
			return "", false
		},
	},
	{
		name: "app config",
		resolve: func(s Signals) (string, bool) {
			if s.ConfigBaseURL != "" {
				return s.ConfigBaseURL, true
			}
			return "", false
		},
	},
	{
		name: "bundle host",
		resolve: func(s Signals) (string, bool) {
			if !s.Dev || s.BundleURL == "" {
				return "", false
			}
			host, scheme, ok := sanitizeHost(s.BundleURL)
			if !ok || !usableHost(host) {
				return "", false
			}
			return baseFromHost(host, scheme), true
		},
	},
	{
		name: "debugger host",
		resolve: func(s Signals) (string, bool) {
			if !s.Dev || s.DebuggerHost == "" {
				return "", false
			}
			host, _, ok := sanitizeHost(s.DebuggerHost)
			if !ok || !usableHost(host) {
				return "", false
			}
			return baseFromHost(host, "http"), true
		},
	},
	{
		name: "android emulator",
		resolve: func(s Signals) (string, bool) {
			if strings.EqualFold(s.Platform, "android") {
				return "http://10.0.2.2:" + FixedPort, true
			}
			return "", false
		},
	},
	{
		name: "loopback fallback",
		resolve: func(s Signals) (string, bool) {
			return "http://localhost:" + FixedPort, true
		},
	},
}

// Resolve walks the rule chain and returns the first match. It never fails:
// the final fallback always applies.
func Resolve(ctx context.Context, s Signals, logger logging.Logger) string {
	for _, r := range rules {
		if base, ok := r.resolve(s); ok {
			if logger != nil {
				logger.Debug(ctx, "resolved base URL", "rule", r.name, "base", base)
			}
			return base
		}
	}
	// unreachable: the last rule always matches
	return "http://localhost:" + FixedPort
}
