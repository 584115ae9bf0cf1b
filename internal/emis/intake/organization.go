// Package intake covers the organisation details, the facility branch choice
// and the technical objectives collected before and between assessments.
package intake

import (
	"errors"
	"strings"
)

var ErrMissingRequiredField = errors.New("MISSING_REQUIRED_FIELD")

// FieldError names the first required field that failed validation. Message
// is suitable for showing to the user as-is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// FacilityTypes are the NAICS sectors offered for the organisation type. The
// first entry is the default.
var FacilityTypes = []string{
	"11 - Agriculture, forestry, fishing and hunting",
	"21 - Mining, quarrying, and oil and gas extraction",
	"22 - Utilities",
	"23 - Construction",
	"31-32-33 - Manufacturing",
	"48 - Transportation",
	"56 - Administrative and support, waste management and remediation services",
}

type UserInfo struct {
	AppID         string   `json:"appId"`
	OrgName       string   `json:"orgName"`
	OrgType       string   `json:"orgType"`
	SiteAddress   string   `json:"siteAddress"`
	AttendeeNames []string `json:"attendeeNames"`
}

// Validate checks required fields in the order the intake form does: the
// application id first, then organisation name and site address together.
func (u UserInfo) Validate() error {
	if strings.TrimSpace(u.AppID) == "" {
		return &FieldError{Field: "appId", Message: "Please enter an Application ID."}
	}
	if strings.TrimSpace(u.OrgName) == "" {
		return &FieldError{Field: "orgName", Message: "Please fill in all required fields."}
	}
	if strings.TrimSpace(u.SiteAddress) == "" {
		return &FieldError{Field: "siteAddress", Message: "Please fill in all required fields."}
	}
	return nil
}

// Normalize trims fields, drops blank attendee names and replaces an unknown
// or empty organisation type with the default.
func (u UserInfo) Normalize() UserInfo {
	out := UserInfo{
		AppID:         strings.TrimSpace(u.AppID),
		OrgName:       strings.TrimSpace(u.OrgName),
		OrgType:       strings.TrimSpace(u.OrgType),
		SiteAddress:   strings.TrimSpace(u.SiteAddress),
		AttendeeNames: make([]string, 0, len(u.AttendeeNames)),
	}
	for _, name := range u.AttendeeNames {
		if name = strings.TrimSpace(name); name != "" {
			out.AttendeeNames = append(out.AttendeeNames, name)
		}
	}
	if !knownFacilityType(out.OrgType) {
		out.OrgType = FacilityTypes[0]
	}
	return out
}

func knownFacilityType(t string) bool {
	for _, ft := range FacilityTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Attendees is the comma-separated attendee list used in reports.
func (u UserInfo) Attendees() string {
	return strings.Join(u.AttendeeNames, ", ")
}
