package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/rookgm/orderdash/internal/models"
	"io"
	"net/http"
	"net/url"
	"time"
)

// default request timeout
const defaultTimeout = 5 * time.Second

// limit of error body read for message extraction
const maxErrorBody = 64 << 10

// restClient performs JSON requests against one service base URL
type restClient struct {
	client  *http.Client
	baseURL string
}

func newRESTClient(baseURL string, timeout time.Duration) restClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return restClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

// do sends request with optional JSON body and decodes 2xx response into out
func (rc restClient) do(ctx context.Context, method string, body any, out any, elem ...string) error {
	url, err := url.JoinPath(rc.baseURL, elem...)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := rc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errResp := errorResponse{}
		// message is optional, an unreadable body leaves it empty
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&errResp)
		return models.NewAPIError(resp.StatusCode, errResp.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, url, err)
	}
	return nil
}
