// Package models defines the core data structures for sessions, projects,
// and contact submissions, together with the lenient JSON decoding the
// backend's loosely typed responses require.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Session represents the authenticated identity held for the current client.
// A session is either fully populated or absent; partial sessions are never
// constructed.
type Session struct {
	// Username is the login name, opaque to this system.
	Username string `json:"username"`
	// IsAdmin is the capability flag as reported by the server.
	IsAdmin bool `json:"isAdmin"`
	// Token is the opaque bearer credential.
	Token string `json:"token"`
}

// Valid reports whether the session is fully populated.
func (s Session) Valid() bool {
	return s.Username != "" && s.Token != ""
}

// User represents a backend account that can sign in to the admin area.
type User struct {
	// Username is the login name.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
	// IsAdmin grants access to the admin area. The server-side value is
	// authoritative; the login request's hint never changes it.
	IsAdmin bool
}

// Category defines the set of valid project categories.
type Category string

const (
	// CategoryResidential represents residential interior projects.
	CategoryResidential Category = "residential"
	// CategoryCommercial represents commercial interior projects.
	CategoryCommercial Category = "commercial"
	// CategoryHospitality represents hospitality interior projects.
	CategoryHospitality Category = "hospitality"
	// CategoryRetail represents retail interior projects.
	CategoryRetail Category = "retail"
)

// ValidCategory reports whether c is one of the known project categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryHospitality, CategoryRetail:
		return true
	}
	return false
}

// Project is a portfolio entry managed through the admin dashboard.
type Project struct {
	// ID is the server-assigned unique identifier, never client-generated.
	ID int64 `json:"id"`
	// Title is the display name of the project.
	Title string `json:"title"`
	// Category is one of the fixed project categories.
	Category Category `json:"category"`
	// Location is the free-text project location.
	Location string `json:"location"`
	// Year is the completion year.
	Year int `json:"year"`
	// Image is the URL of the showcase image.
	Image string `json:"image"`
	// Rating is an optional score in [0,5]; zero when absent.
	Rating float64 `json:"rating,omitempty"`
}

// UnmarshalJSON decodes a project while tolerating the backend's habit of
// encoding numeric fields as strings.
func (p *Project) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       FlexInt   `json:"id"`
		Title    string    `json:"title"`
		Category Category  `json:"category"`
		Location string    `json:"location"`
		Year     FlexInt   `json:"year"`
		Image    string    `json:"image"`
		Rating   FlexFloat `json:"rating"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = int64(raw.ID)
	p.Title = raw.Title
	p.Category = raw.Category
	p.Location = raw.Location
	p.Year = int(raw.Year)
	p.Image = raw.Image
	p.Rating = float64(raw.Rating)
	return nil
}

// ProjectDraft holds the client-supplied fields of a project before the
// server assigns an identifier.
type ProjectDraft struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Location string   `json:"location"`
	Year     int      `json:"year"`
	Image    string   `json:"image"`
	Rating   float64  `json:"rating,omitempty"`
}

// ContactStatus defines the triage states of a contact submission.
type ContactStatus string

const (
	// StatusNew marks a submission not yet looked at.
	StatusNew ContactStatus = "new"
	// StatusInProgress marks a submission being handled.
	StatusInProgress ContactStatus = "in_progress"
	// StatusCompleted marks a submission that has been resolved.
	StatusCompleted ContactStatus = "completed"
	// StatusArchived marks a submission kept for reference only.
	StatusArchived ContactStatus = "archived"
)

// ValidStatus reports whether s is one of the known triage states.
func ValidStatus(s ContactStatus) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Contact is a submission from the public contact form, triaged in the
// admin area.
type Contact struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"id"`
	// Name is the submitter's name.
	Name string `json:"name"`
	// Email is the submitter's email address.
	Email string `json:"email"`
	// Phone is optional.
	Phone string `json:"phone,omitempty"`
	// Service is the service the submitter asked about.
	Service string `json:"service,omitempty"`
	// Message is the free-text body of the submission.
	Message string `json:"message"`
	// Status is the triage state; unknown values normalize to StatusNew.
	Status ContactStatus `json:"status"`
	// CreatedAt is the server-side submission timestamp, passed through
	// as received.
	CreatedAt string `json:"created_at,omitempty"`
}

// UnmarshalJSON decodes a contact, normalizing a missing or unknown status
// to StatusNew and tolerating numeric identifiers.
func (c *Contact) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        FlexString    `json:"id"`
		Name      string        `json:"name"`
		Email     string        `json:"email"`
		Phone     string        `json:"phone"`
		Service   string        `json:"service"`
		Message   string        `json:"message"`
		Status    ContactStatus `json:"status"`
		CreatedAt string        `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = string(raw.ID)
	c.Name = raw.Name
	c.Email = raw.Email
	c.Phone = raw.Phone
	c.Service = raw.Service
	c.Message = raw.Message
	c.Status = raw.Status
	if !ValidStatus(c.Status) {
		c.Status = StatusNew
	}
	c.CreatedAt = raw.CreatedAt
	return nil
}

// ContactDraft holds the fields of a public contact-form submission before
// the server assigns an identifier and timestamp.
type ContactDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// FlexBool decodes a JSON value that backends encode as a boolean, a number,
// or a string. "1", "true", "yes" and any non-zero number are true.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}
	switch data[0] {
	case 't':
		*b = true
		return nil
	case 'f':
		*b = false
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "true", "yes":
			*b = true
		default:
			*b = false
		}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*b = n != 0
		return nil
	}
}

// FlexFloat decodes a JSON number that may arrive as a numeric string.
// An empty string or null decodes to zero.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes a JSON integer that may arrive as a numeric string or a
// float. An empty string or null decodes to zero.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(f)
	return nil
}

// FlexString decodes a JSON string that may arrive as a bare number.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(string(data))
	return nil
}
