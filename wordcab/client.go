package wordcab

import (
	"time"

	"github.com/kbukum/wordcab-go/config"
	"github.com/kbukum/wordcab-go/credentials"
	"github.com/kbukum/wordcab-go/httpclient"
	"github.com/kbukum/wordcab-go/logger"
	"github.com/kbukum/wordcab-go/version"
)

// Client is an authenticated gateway to the API. It is safe for concurrent
// use; Close releases idle connections when the client is no longer needed.
type Client struct {
	http *httpclient.Client
	log  *logger.Logger
}

type clientOptions struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	retry   bool
	log     *logger.Logger
	httpCfg *httpclient.Config
}

// Option configures a Client.
type Option func(*clientOptions)

// WithAPIKey uses the given API key instead of resolving one from the
// environment or the credential store.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) { o.apiKey = key }
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) { o.baseURL = url }
}

// WithTimeout bounds each API request.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithRetry enables transport-level retries for transient failures. Off by
// default: operations are attempted exactly once.
func WithRetry() Option {
	return func(o *clientOptions) { o.retry = true }
}

// WithLogger attaches a logger. The default client is silent.
func WithLogger(log *logger.Logger) Option {
	return func(o *clientOptions) { o.log = log }
}

// WithHTTPConfig replaces the transport configuration wholesale. Auth is
// still filled in from the resolved API key.
func WithHTTPConfig(cfg httpclient.Config) Option {
	return func(o *clientOptions) { o.httpCfg = &cfg }
}

// NewClient builds a client. The API key is resolved in order: WithAPIKey,
// the WORDCAB_API_KEY environment variable, then the stored login token; a
// missing key fails construction.
func NewClient(opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	key, err := credentials.ResolveAPIKey(o.apiKey)
	if err != nil {
		return nil, err
	}

	var cfg httpclient.Config
	if o.httpCfg != nil {
		cfg = *o.httpCfg
	} else {
		cfg = httpclient.Config{
			BaseURL: config.DefaultBaseURL,
			Timeout: o.timeout,
		}
		if o.baseURL != "" {
			cfg.BaseURL = o.baseURL
		}
		if o.retry {
			cfg.Retry = httpclient.DefaultRetryConfig()
		}
	}
	cfg.Auth = httpclient.BearerAuth(key)
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	if _, ok := cfg.Headers["User-Agent"]; !ok {
		cfg.Headers["User-Agent"] = version.UserAgent()
	}

	http, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}

	log := o.log
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		http: http,
		log:  log.WithComponent("wordcab"),
	}, nil
}

// Close releases idle connections. The client must not be used afterwards.
func (c *Client) Close() {
	c.http.Close()
}
