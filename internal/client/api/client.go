// Package api implements the typed HTTP client for the study-planning
// service: login, subject management and notes. Every call that touches user
// data requires a session token and fails fast with ErrUnauthenticated
// before any network I/O when none is set.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atinyakov/StudyPlanner/internal/models"
	"github.com/atinyakov/StudyPlanner/internal/session"
)

const (
	pathUser    = "/user"
	pathSubject = "/subject"
	pathNote    = "/note"
)

// requestTimeout bounds every API call. Timeouts surface as transport errors
// to the caller; nothing is retried.
const requestTimeout = 10 * time.Second

// Client talks to the study-planning service. All date fields in responses
// are parsed into time.Time before they reach the caller.
type Client struct {
	http    *http.Client
	baseURL string
	session *session.Session
}

// New returns a Client for the service at baseURL, attaching tokens from the
// given session.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sess,
	}
}

// Login authenticates against POST /user and returns the session token.
// An unknown username is registered by the server on the fly; a known
// username with a different password yields ErrUserConflict.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", &ValidationError{Field: "username"}
	}
	if strings.TrimSpace(password) == "" {
		return "", &ValidationError{Field: "password"}
	}

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathUser, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg := readErrorBody(resp.Body)
		if resp.StatusCode == http.StatusConflict && msg == "UserConflict" {
			return "", ErrUserConflict
		}
		return "", &RemoteError{Status: resp.StatusCode, Message: msg}
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return out.Token, nil
}

// ListSubjects fetches the user's subjects for the given month and year
// (1-based month) with notes inlined.
func (c *Client) ListSubjects(ctx context.Context, month time.Month, year int) ([]models.Subject, error) {
	req, err := c.newAuthorizedRequest(ctx, http.MethodGet, pathSubject, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("instance-notes", "true")
	q := req.URL.Query()
	q.Set("month", strconv.Itoa(int(month)))
	q.Set("year", strconv.Itoa(year))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var subjects []models.Subject
	if err := json.NewDecoder(resp.Body).Decode(&subjects); err != nil {
		return nil, fmt.Errorf("decode subjects: %w", err)
	}
	return subjects, nil
}

// CreateSubject creates a subject via POST /subject. The study date defaults
// to now and the revision offsets to models.DefaultRevisionOffsets. The
// server materializes one extra subject per offset; every created subject is
// returned, and merging only the ones in the displayed month into the visible
// set is the caller's responsibility.
func (c *Client) CreateSubject(ctx context.Context, create models.CreateSubjectRequest) ([]models.Subject, error) {
	if strings.TrimSpace(create.Title) == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if create.StudyDate == nil {
		now := time.Now()
		create.StudyDate = &now
	}
	if create.AddRevisionsInDays == nil {
		create.AddRevisionsInDays = models.DefaultRevisionOffsets()
	}

	req, err := c.newAuthorizedRequest(ctx, http.MethodPost, pathSubject, create)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var out struct {
		Subjects []models.Subject `json:"subjects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode created subjects: %w", err)
	}
	return out.Subjects, nil
}

// EditSubject replaces the subject's title and description via
// PUT /subject/{id}. On success the input is returned as the new canonical
// value; no re-fetch happens.
func (c *Client) EditSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	if strings.TrimSpace(subject.Title) == "" {
		return models.Subject{}, &ValidationError{Field: "title"}
	}

	req, err := c.newAuthorizedRequest(ctx, http.MethodPut, pathSubject+"/"+subject.UUID, subject)
	if err != nil {
		return models.Subject{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Subject{}, fmt.Errorf("edit subject: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Subject{}, &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}
	return subject, nil
}

// DeleteSubject removes the subject via DELETE /subject/{id}. Anything but
// a definitive 204 is an error.
func (c *Client) DeleteSubject(ctx context.Context, id string) error {
	req, err := c.newAuthorizedRequest(ctx, http.MethodDelete, pathSubject+"/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}
	return nil
}

// AddNote attaches a note to the subject via POST /note. Blank content is
// rejected locally without a network call. The returned note carries the
// server-assigned identifier and timestamp.
func (c *Client) AddNote(ctx context.Context, subjectUUID, content string) (models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return models.Note{}, &ValidationError{Field: "content"}
	}

	req, err := c.newAuthorizedRequest(ctx, http.MethodPost, pathNote, map[string]string{
		"subjectUuid": subjectUUID,
		"content":     content,
	})
	if err != nil {
		return models.Note{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return models.Note{}, &RemoteError{Status: resp.StatusCode, Message: readErrorBody(resp.Body)}
	}

	var out struct {
		Note models.Note `json:"note"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.Note{}, fmt.Errorf("decode note: %w", err)
	}
	return out.Note, nil
}

// newAuthorizedRequest builds a JSON request with the bearer token attached.
// It fails with ErrUnauthenticated before touching the network when no token
// is set.
func (c *Client) newAuthorizedRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	if !c.session.Authenticated() {
		return nil, ErrUnauthenticated
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.session.BearerToken())
	return req, nil
}

// readErrorBody extracts the "error" field from a failure response, or ""
// when the body is not the expected JSON shape.
func readErrorBody(r io.Reader) string {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return ""
	}
	return out.Error
}
