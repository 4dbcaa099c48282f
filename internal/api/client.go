// Package api is the HTTP client for the remote LearnPal tutoring
// service: authentication, learner CRUD, lesson exchange, voice
// synthesis and transcription, feedback, and progress.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// TokenSource supplies the bearer credential attached to every request.
type TokenSource interface {
	Token() (token string, ok bool)
}

// Client talks to the LearnPal service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New creates a Client. tokens may be nil for unauthenticated use.
func New(cfg Config, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
	}
}

// Me fetches the authenticated guardian. A 401 means the stored
// credential is invalid or expired.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.getJSON(ctx, "/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges guardian credentials for a bearer token.
// The endpoint is OAuth2 form-encoded: username/password fields.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok tokenResponse
	if err := c.do(req, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Signup creates a guardian account and returns a bearer token.
func (c *Client) Signup(ctx context.Context, reg Registration) (string, error) {
	var tok tokenResponse
	if err := c.postJSON(ctx, "/auth/signup", reg, &tok); err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// Learners lists the guardian's learner profiles.
func (c *Client) Learners(ctx context.Context) ([]Learner, error) {
	var out []Learner
	if err := c.getJSON(ctx, "/learners", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLearner adds a learner profile. dob is YYYY-MM.
func (c *Client) CreateLearner(ctx context.Context, name, dob string) (*Learner, error) {
	body := map[string]string{"name": name, "dob": dob}
	var l Learner
	if err := c.postJSON(ctx, "/learners", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Progress fetches per-concept mastery for a learner.
func (c *Client) Progress(ctx context.Context, learnerID int) (ProgressReport, error) {
	var out ProgressReport
	if err := c.getJSON(ctx, fmt.Sprintf("/progress/%d", learnerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Lesson sends one user message and returns the tutor's reply.
func (c *Client) Lesson(ctx context.Context, learnerID int, userText string) (*LessonReply, error) {
	body := map[string]any{"learner_id": learnerID, "user_text": userText}
	var reply LessonReply
	if err := c.postJSON(ctx, "/lesson", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Synthesize requests synthesized speech for text and returns the raw
// audio byte stream.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	u := c.baseURL + "/voice/tts?text=" + url.QueryEscape(text)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}
	return data, nil
}

// Transcribe uploads captured audio (WAV or MP3) and returns the
// recognized text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="utterance.wav"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/voice/stt", &buf)
	if err != nil {
		return "", fmt.Errorf("build stt request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out Transcription
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// Feedback submits a thumbs rating. Fire-and-forget at the caller.
func (c *Client) Feedback(ctx context.Context, learnerID, rating int, latencyMs int64) error {
	body := map[string]any{
		"learner_id": learnerID,
		"rating":     rating,
		"latency_ms": latencyMs,
	}
	return c.postJSON(ctx, "/feedback", body, nil)
}

// Health pings the service.
func (c *Client) Health(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &ServiceError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServiceError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// statusError maps a non-2xx response onto the error taxonomy.
func statusError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var body struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &ValidationError{StatusCode: resp.StatusCode, Detail: body.Detail}
	}

	return &ServiceError{StatusCode: resp.StatusCode}
}
