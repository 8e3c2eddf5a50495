package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// RemoteError carries a non-2xx reply from the registration service. Detail
// is the human-readable message extracted from the error body, or empty when
// the body carried none.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("registration service returned status %d", e.Status)
}

// Client submits completed registrations to the remote matching service.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// RegisterMentor POSTs the mentor payload to <base>/mentor/register.
func (c *Client) RegisterMentor(ctx context.Context, p *MentorPayload) error {
	return c.post(ctx, "/mentor/register", p)
}

// RegisterMentee POSTs the mentee payload to <base>/mentee/register.
func (c *Client) RegisterMentee(ctx context.Context, p *MenteePayload) error {
	return c.post(ctx, "/mentee/register", p)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal registration payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registration request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &RemoteError{Status: resp.StatusCode, Detail: extractDetail(resp)}
}

// extractDetail pulls the optional {"detail": string|object} message out of
// an error body. Structured details are flattened: lists of {msg} entries and
// {errors: {field: [msgs]}} maps both join their messages with spaces; any
// other shape is rendered as JSON.
func extractDetail(resp *http.Response) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &list); err == nil && len(list) > 0 {
		msgs := make([]string, 0, len(list))
		for _, item := range list {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, " ")
		}
	}

	var fields struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body.Detail, &fields); err == nil && len(fields.Errors) > 0 {
		keys := make([]string, 0, len(fields.Errors))
		for k := range fields.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var msgs []string
		for _, k := range keys {
			msgs = append(msgs, fields.Errors[k]...)
		}
		return strings.Join(msgs, " ")
	}

	return string(body.Detail)
}
