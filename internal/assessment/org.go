package assessment

import (
	"regexp"
	"strings"
)

// OrganizationInfo is the organization record collected before the
// questionnaire. JSON tags match the scoring service's company model.
type OrganizationInfo struct {
	CompanyName     string `json:"company_name"`
	Industry        string `json:"industry"`
	CompanySize     string `json:"company_size"`
	Region          string `json:"region"`
	ContactEmail    string `json:"contact_email"`
	ContactName     string `json:"contact_name"`
	AdditionalNotes string `json:"additional_notes"`
}

// Field keys for per-field validation errors.
const (
	FieldCompanyName  = "company_name"
	FieldIndustry     = "industry"
	FieldCompanySize  = "company_size"
	FieldRegion       = "region"
	FieldContactEmail = "contact_email"
)

// FieldErrors maps a field key to its validation message.
type FieldErrors map[string]string

// emailPattern accepts local@domain.tld shapes without trying to be a
// full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Validate applies the organization-info rules: required presence for
// name, industry, size, region and email, plus email well-formedness.
// Contact name and notes are optional. Returns an empty map when valid.
func (i OrganizationInfo) Validate() FieldErrors {
	errs := make(FieldErrors)

	if strings.TrimSpace(i.CompanyName) == "" {
		errs[FieldCompanyName] = "Company name is required"
	}
	if i.Industry == "" {
		errs[FieldIndustry] = "Industry is required"
	}
	if i.CompanySize == "" {
		errs[FieldCompanySize] = "Company size is required"
	}
	if i.Region == "" {
		errs[FieldRegion] = "Region is required"
	}

	email := strings.TrimSpace(i.ContactEmail)
	switch {
	case email == "":
		errs[FieldContactEmail] = "Contact email is required"
	case !emailPattern.MatchString(email):
		errs[FieldContactEmail] = "Invalid email format"
	}

	return errs
}
