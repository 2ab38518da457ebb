// Package httpclient provides the HTTP transport used by the SDK, with
// bearer authentication, typed error classification, optional retries, and
// multipart upload support.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://wordcab.com/api/v1",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/jobs/job_abc",
//	})
//
// # Typed requests
//
// The generic helpers decode JSON responses directly:
//
//	stats, err := httpclient.Get[core.Stats](client, ctx, "/me")
//
// # With retries
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://wordcab.com/api/v1",
//	    Retry:   httpclient.DefaultRetryConfig(),
//	})
package httpclient
