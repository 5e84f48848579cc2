// Package api implements the HTTP client for the backend REST contract:
// the login exchange, project management, and contact triage endpoints.
// All remote I/O of the admin client flows through this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/interiorvision/interior/internal/models"
)

// Backend routes, relative to the configured base URL.
const (
	pathLogin         = "/api/login"
	pathProjects      = "/api/projects"
	pathProjectAdd    = "/api/projects/add"
	pathProjectDelete = "/api/projects/delete"
	pathContacts      = "/api/contacts"
	pathContactStatus = "/api/contacts/status"
	pathContactDelete = "/api/contacts/delete"
	pathContactSubmit = "/api/contact"
)

// DefaultTimeout bounds a single backend round trip.
const DefaultTimeout = 15 * time.Second

// Client talks to the backend API. Authenticated calls take the bearer token
// explicitly; the client holds no session state of its own.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL. httpClient may be nil, in
// which case a client with DefaultTimeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// LoginResult is the normalized successful login response.
type LoginResult struct {
	Username string
	IsAdmin  bool
	Token    string
}

// Login exchanges credentials for a token. The requestedAdmin flag is a
// client-side hint only; the IsAdmin bit in the result is the server's
// verdict, normalized from whatever encoding the server used.
func (c *Client) Login(ctx context.Context, username, password string, requestedAdmin bool) (LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return LoginResult{}, validationErr("username and password are required")
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	if requestedAdmin {
		form.Set("isAdmin", "1")
	} else {
		form.Set("isAdmin", "0")
	}

	resp, err := c.postForm(ctx, pathLogin, "", form)
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	var body struct {
		Success  models.FlexBool `json:"success"`
		Message  string          `json:"message"`
		Username string          `json:"username"`
		IsAdmin  models.FlexBool `json:"isAdmin"`
		Token    string          `json:"token"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return LoginResult{}, err
	}
	if !bool(body.Success) {
		return LoginResult{}, applicationErr(body.Message, resp.StatusCode)
	}
	if body.Username == "" || body.Token == "" {
		return LoginResult{}, formatErr(nil, "login response missing username or token")
	}
	return LoginResult{
		Username: body.Username,
		IsAdmin:  bool(body.IsAdmin),
		Token:    body.Token,
	}, nil
}

// ListProjects fetches the full project collection in server order.
func (c *Client) ListProjects(ctx context.Context, token string) ([]models.Project, error) {
	resp, err := c.get(ctx, pathProjects, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	if err := requireJSON(resp); err != nil {
		return nil, err
	}
	var projects []models.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, formatErr(err, "invalid project list response")
	}
	return projects, nil
}

// CreateProject submits a draft and returns the created project carrying the
// server-assigned id. Nothing is created locally unless the server confirms.
func (c *Client) CreateProject(ctx context.Context, token string, draft models.ProjectDraft) (models.Project, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.Project{}, validationErr("project title is required")
	}
	if !models.ValidCategory(draft.Category) {
		return models.Project{}, validationErr(fmt.Sprintf("unknown category %q", draft.Category))
	}

	form := url.Values{}
	form.Set("title", draft.Title)
	form.Set("category", string(draft.Category))
	form.Set("location", draft.Location)
	form.Set("year", strconv.Itoa(draft.Year))
	form.Set("image", draft.Image)
	if draft.Rating > 0 {
		form.Set("rating", strconv.FormatFloat(draft.Rating, 'f', -1, 64))
	}

	resp, err := c.postForm(ctx, pathProjectAdd, token, form)
	if err != nil {
		return models.Project{}, err
	}
	defer resp.Body.Close()

	var body struct {
		Success models.FlexBool `json:"success"`
		Message string          `json:"message"`
		ID      models.FlexInt  `json:"id"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return models.Project{}, err
	}
	if !bool(body.Success) {
		return models.Project{}, applicationErr(body.Message, resp.StatusCode)
	}
	return models.Project{
		ID:       int64(body.ID),
		Title:    draft.Title,
		Category: draft.Category,
		Location: draft.Location,
		Year:     draft.Year,
		Image:    draft.Image,
		Rating:   draft.Rating,
	}, nil
}

// DeleteProject removes a project by id.
func (c *Client) DeleteProject(ctx context.Context, token string, id int64) error {
	form := url.Values{}
	form.Set("id", strconv.FormatInt(id, 10))

	resp, err := c.postForm(ctx, pathProjectDelete, token, form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeAck(resp)
}

// ListContacts fetches all contact submissions in server order.
func (c *Client) ListContacts(ctx context.Context, token string) ([]models.Contact, error) {
	resp, err := c.get(ctx, pathContacts, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Success  models.FlexBool  `json:"success"`
		Message  string           `json:"message"`
		Contacts []models.Contact `json:"contacts"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	if !bool(body.Success) {
		return nil, applicationErr(body.Message, resp.StatusCode)
	}
	return body.Contacts, nil
}

// UpdateContactStatus transitions a contact submission to newStatus.
func (c *Client) UpdateContactStatus(ctx context.Context, token, id string, newStatus models.ContactStatus) error {
	if !models.ValidStatus(newStatus) {
		return validationErr(fmt.Sprintf("unknown status %q", newStatus))
	}
	payload := map[string]string{
		"contact_id": id,
		"status":     string(newStatus),
	}
	resp, err := c.postJSON(ctx, pathContactStatus, token, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeAck(resp)
}

// DeleteContact removes a contact submission by id.
func (c *Client) DeleteContact(ctx context.Context, token, id string) error {
	payload := map[string]string{"contact_id": id}
	resp, err := c.postJSON(ctx, pathContactDelete, token, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeAck(resp)
}

// SubmitContact sends a public contact-form submission. No authentication.
// It returns the server-assigned id when the server provides one.
func (c *Client) SubmitContact(ctx context.Context, draft models.ContactDraft) (string, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Email) == "" {
		return "", validationErr("name and email are required")
	}
	resp, err := c.postJSON(ctx, pathContactSubmit, "", draft)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Success models.FlexBool   `json:"success"`
		Message string            `json:"message"`
		ID      models.FlexString `json:"id"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return "", err
	}
	if !bool(body.Success) {
		return "", applicationErr(body.Message, resp.StatusCode)
	}
	return string(body.ID), nil
}

func (c *Client) get(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, wrapTransport(err, "create request failed")
	}
	setAuth(req, token)
	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, path, token string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, wrapTransport(err, "create request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	setAuth(req, token)
	return c.do(req)
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload any) (*http.Response, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, formatErr(err, "encode request failed")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, wrapTransport(err, "create request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapTransport(err, "network error, please try again")
	}
	return resp, nil
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeJSON decodes a response body that is expected to carry a JSON object
// whether the request succeeded or failed. A non-2xx status with an
// undecodable body is reported as a transport error.
func decodeJSON(resp *http.Response, v any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapTransport(err, "read response failed")
	}
	if err := json.Unmarshal(data, v); err != nil {
		if err := checkStatus(resp); err != nil {
			return err
		}
		return formatErr(err, "invalid response from server")
	}
	return nil
}

// decodeAck handles the common {success, message} acknowledgement shape.
func decodeAck(resp *http.Response) error {
	var body struct {
		Success models.FlexBool `json:"success"`
		Message string          `json:"message"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return err
	}
	if !bool(body.Success) {
		return applicationErr(body.Message, resp.StatusCode)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return transportErr("server error: %d", resp.StatusCode)
	}
	return nil
}

func requireJSON(resp *http.Response) error {
	ct := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "application/json" {
		return formatErr(nil, fmt.Sprintf("unexpected content type %q", ct))
	}
	return nil
}
