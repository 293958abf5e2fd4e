// Package model defines the record types shared across the cleaning pipeline.
package model

import "strings"

// Field identifies one of the cleanable attributes of a contact record.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldCompany
	FieldEmail
	FieldPhone
	FieldJobTitle

	// FieldCount is the number of cleanable fields.
	FieldCount
)

// String returns the canonical display header for the field.
func (f Field) String() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldCompany:
		return "Company"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldJobTitle:
		return "Job Title"
	default:
		return "Unknown"
	}
}

// Fields lists all cleanable fields in column order.
func Fields() []Field {
	return []Field{FieldFirstName, FieldLastName, FieldCompany, FieldEmail, FieldPhone, FieldJobTitle}
}

// Record is one input row. All attributes are optional free text; identity
// is positional (the row index), no natural key is assumed.
type Record struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	JobTitle  string `json:"job_title"`
}

// Get returns the value of the given field.
func (r Record) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return r.FirstName
	case FieldLastName:
		return r.LastName
	case FieldCompany:
		return r.Company
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldJobTitle:
		return r.JobTitle
	default:
		return ""
	}
}

// Set assigns the value of the given field.
func (r *Record) Set(f Field, v string) {
	switch f {
	case FieldFirstName:
		r.FirstName = v
	case FieldLastName:
		r.LastName = v
	case FieldCompany:
		r.Company = v
	case FieldEmail:
		r.Email = v
	case FieldPhone:
		r.Phone = v
	case FieldJobTitle:
		r.JobTitle = v
	}
}

// IsAbsent reports whether a raw field value represents a missing value.
// Collapses the export artifacts "nan", "none" and "null" (any casing)
// together with empty/whitespace-only strings into one absent case.
func IsAbsent(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "nan", "none", "null":
		return true
	}
	return false
}

// Presentf returns the trimmed value, or "" when the value is absent.
func Presentf(s string) string {
	if IsAbsent(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// ChangedFlags records, per field, whether cleaning altered the value
// relative to the trimmed original.
type ChangedFlags [FieldCount]bool

// Any reports whether at least one field changed.
func (c ChangedFlags) Any() bool {
	for _, b := range c {
		if b {
			return true
		}
	}
	return false
}

// Count returns the number of changed fields.
func (c ChangedFlags) Count() int {
	n := 0
	for _, b := range c {
		if b {
			n++
		}
	}
	return n
}

// CleanedRecord is the result of cleaning a single Record.
type CleanedRecord struct {
	Record
	Index        int              `json:"index"`
	QualityScore int              `json:"quality_score"`
	Changed      ChangedFlags     `json:"-"`
	EmailResult  ValidationResult `json:"email_result"`
	PhoneValid   bool             `json:"phone_valid"`
	PatternMatch PatternMatch     `json:"pattern_match"`
}
