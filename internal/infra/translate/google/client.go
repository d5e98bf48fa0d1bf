package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

const (
	defaultBaseURL = "https://translation.googleapis.com"
	defaultTimeout = 60 * time.Second
)

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

// Client calls the Cloud Translation v2 API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a translation client.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate returns one plain-text translation per input, in order.
// The result may be shorter than texts if the API drops entries.
func (c *Client) Translate(ctx context.Context, texts []string, target string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}
	payload, err := json.Marshal(translateRequest{Q: texts, Target: target, Format: "text"})
	if err != nil {
		return nil, fmt.Errorf("encode translation request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/language/translate/v2?key=%s", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &wellness.UpstreamError{
			Service:    "translation",
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode translation response: invalid json")
	}

	items := gjson.GetBytes(body, "data.translations.#.translatedText").Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, decodeHTML(item.String()))
	}
	return out, nil
}

// decodeHTML resolves entities and strips markup; <br> becomes a newline.
func decodeHTML(s string) string {
	if !strings.ContainsAny(s, "&<") {
		return s
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}

var _ wellness.Translator = (*Client)(nil)
