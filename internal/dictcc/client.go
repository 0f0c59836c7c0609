package dictcc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const pairPlaceholder = "{pair}"

type Client struct {
	Endpoint  string
	UserAgent string
	http      *resty.Client
}

func NewClient(endpoint, userAgent string, timeout time.Duration) *Client {
	c := resty.New().SetTimeout(timeout)
	return &Client{Endpoint: endpoint, UserAgent: userAgent, http: c}
}

// URL returns the results-page address for a language pair, e.g. https://deen.dict.cc/.
func (c *Client) URL(from, to string) string {
	pair := strings.ToLower(from) + strings.ToLower(to)
	return strings.ReplaceAll(c.Endpoint, pairPlaceholder, pair)
}

// Fetch downloads the results page for word.
func (c *Client) Fetch(ctx context.Context, word, from, to string) (string, error) {
	r, err := c.http.R().SetContext(ctx).
		SetHeader("User-Agent", c.UserAgent).
		SetQueryParam("s", word).
		Get(c.URL(from, to))
	if err != nil {
		return "", err
	}
	if r.IsError() {
		return "", fmt.Errorf("dict.cc lookup: %s", r.Status())
	}
	return r.String(), nil
}
