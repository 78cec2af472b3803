package composio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type httpClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newHTTPClient(baseURL string, hc *http.Client) *httpClient {
	return &httpClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

func (c *httpClient) setAPIKey(key string) {
	c.apiKey = key
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Code: ErrCodeAPI, Message: fmt.Sprintf("failed to create request: %v", err), Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Code: ErrCodeAPI, Message: fmt.Sprintf("request failed: %v", err), Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: ErrCodeAPI, Message: fmt.Sprintf("failed to read response: %v", err), Cause: err}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(respBody) == 0 {
			return nil, nil
		}
		return json.RawMessage(respBody), nil
	}

	apiErr := &Error{Code: ErrCodeAPI, StatusCode: resp.StatusCode}
	if resp.StatusCode == http.StatusNotFound {
		apiErr.Code = ErrCodeNotFound
	}
	var errBody struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(respBody, &errBody) == nil && (errBody.Error != "" || errBody.Message != "") {
		if errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else {
			apiErr.Message = errBody.Error
		}
	} else {
		apiErr.Message = string(respBody)
	}
	return nil, apiErr
}

func (c *httpClient) get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	if len(params) > 0 {
		v := url.Values{}
		for k, val := range params {
			if val != "" {
				v.Set(k, val)
			}
		}
		if encoded := v.Encode(); encoded != "" {
			path = path + "?" + encoded
		}
	}
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

func (c *httpClient) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Code: ErrCodeAPI, Message: fmt.Sprintf("failed to marshal request: %v", err), Cause: err}
		}
		body = bytes.NewReader(b)
	}
	return c.doRequest(ctx, http.MethodPost, path, body)
}

func (c *httpClient) del(ctx context.Context, path string) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil)
}

func decodeJSON(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &Error{Code: ErrCodeAPI, Message: fmt.Sprintf("failed to decode response: %v", err), Cause: err}
	}
	return nil
}
