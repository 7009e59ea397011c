package http

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

func newRestyClient(cfg ClientConfig) *resty.Client {
	rc := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)

	if cfg.Retries > 0 {
		rc.SetRetryCount(cfg.Retries).
			SetRetryWaitTime(cfg.RetryWait).
			SetRetryMaxWaitTime(cfg.RetryWait).
			AddRetryCondition(retryable)
	}
	return rc
}

// retryable retries transport errors and 5xx answers. 4xx are final.
func retryable(r *resty.Response, err error) bool {
	return err != nil || r.StatusCode() >= 500
}

func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: gave up after %d retries: %w", url, c.cfg.Retries, err)
	}
	return c.limit(resp.Body()), resp.StatusCode(), nil
}

func (c *clientImpl) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	req := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(headers)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(url)
	if err != nil {
		return nil, 0, fmt.Errorf("POST %s: gave up after %d retries: %w", url, c.cfg.Retries, err)
	}
	return c.limit(resp.Body()), resp.StatusCode(), nil
}

func (c *clientImpl) limit(body []byte) []byte {
	if c.cfg.MaxBodyBytes > 0 && len(body) > c.cfg.MaxBodyBytes {
		return body[:c.cfg.MaxBodyBytes]
	}
	return body
}
