package utils

import (
	"net"
	"net/http"
	"net/url"
	"time"
)

// Transport defaults. The prediction call itself has no deadline unless the
// caller sets one; only connection setup is bounded here.
const (
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 5 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second

	defaultMaxConnsPerHost     = 64
	defaultMaxIdleConns        = 128
	defaultMaxIdleConnsPerHost = 64

	defaultDialerTimeout   = 5 * time.Second
	defaultDialerKeepAlive = 30 * time.Second
)

// ClientConfig captures tunables for the outbound HTTP client/transport.
// All fields are optional. Timeouts left at zero mean "no limit" for
// ClientTimeout and ResponseHeaderTimeout and "default" for everything else.
type ClientConfig struct {
	// Client-level deadline (caps total request time). Zero disables it.
	ClientTimeout time.Duration
	// Time to first byte of headers. Zero disables it.
	ResponseHeaderTimeout time.Duration

	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ExpectContinueTimeout time.Duration

	MaxConnsPerHost     int
	MaxIdleConns        int
	MaxIdleConnsPerHost int

	DialerTimeout   time.Duration
	DialerKeepAlive time.Duration

	Proxy func(*http.Request) (*url.URL, error) // default http.ProxyFromEnvironment
}

// ClientOption ----- Functional options pattern -----
type ClientOption func(*ClientConfig)

func WithClientTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) { c.ClientTimeout = d }
}
func WithResponseHeaderTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) { c.ResponseHeaderTimeout = d }
}
func WithDialerTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) { c.DialerTimeout = d }
}
func WithMaxConnsPerHost(n int) ClientOption { return func(c *ClientConfig) { c.MaxConnsPerHost = n } }

// DefaultClientConfig returns a copy of the library defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		ExpectContinueTimeout: defaultExpectContinueTimeout,
		MaxConnsPerHost:       defaultMaxConnsPerHost,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   defaultMaxIdleConnsPerHost,
		DialerTimeout:         defaultDialerTimeout,
		DialerKeepAlive:       defaultDialerKeepAlive,
		Proxy:                 http.ProxyFromEnvironment,
	}
}

// NewHTTPClient builds the *http.Client used for prediction service calls.
func NewHTTPClient(opts ...ClientOption) *http.Client {
	cfg := DefaultClientConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	sanitizeClientConfig(&cfg)

	tr := &http.Transport{
		Proxy: cfg.Proxy,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialerTimeout,
			KeepAlive: cfg.DialerKeepAlive,
		}).DialContext,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ExpectContinueTimeout: cfg.ExpectContinueTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.ClientTimeout,
	}
}

// sanitizeClientConfig replaces out-of-range values so odd env settings cannot
// produce a broken transport.
func sanitizeClientConfig(c *ClientConfig) {
	if c.ClientTimeout < 0 {
		c.ClientTimeout = 0
	}
	if c.ResponseHeaderTimeout < 0 {
		c.ResponseHeaderTimeout = 0
	}
	if c.IdleConnTimeout <= 0 {
		c.IdleConnTimeout = defaultIdleConnTimeout
	}
	if c.TLSHandshakeTimeout <= 0 {
		c.TLSHandshakeTimeout = defaultTLSHandshakeTimeout
	}
	if c.ExpectContinueTimeout <= 0 {
		c.ExpectContinueTimeout = defaultExpectContinueTimeout
	}
	if c.DialerTimeout <= 0 {
		c.DialerTimeout = defaultDialerTimeout
	}
	if c.DialerKeepAlive <= 0 {
		c.DialerKeepAlive = defaultDialerKeepAlive
	}

	if c.MaxConnsPerHost <= 0 {
		c.MaxConnsPerHost = defaultMaxConnsPerHost
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = defaultMaxIdleConns
	}
	if c.MaxIdleConnsPerHost <= 0 {
		c.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}

	if c.Proxy == nil {
		c.Proxy = http.ProxyFromEnvironment
	}
}
