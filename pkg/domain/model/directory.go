package model

import (
	"strings"

	"github.com/secmon-lab/themis/pkg/domain/types"
)

// DirectoryGroup represents the metadata of a directory group, fetched
// to verify the group is reachable before listing its members.
type DirectoryGroup struct {
	ID          types.GroupID `json:"id"`
	DisplayName string        `json:"displayName"`
}

// DirectoryRecord is a raw record returned by a directory API page. The
// field set is intentionally loose: member listings mix full user
// profiles, partial profiles and nested groups depending on the backend.
type DirectoryRecord struct {
	ODataType         string `json:"@odata.type"`
	ID                string `json:"id"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	DisplayName       string `json:"displayName"`
	GivenName         string `json:"givenName"`
	Surname           string `json:"surname"`
}

const userODataType = "#microsoft.graph.user"

// IsAccount reports whether the record denotes an individual account
// rather than a nested group. When the type discriminator is absent,
// any record bearing an identifier is treated as an individual account.
func (r *DirectoryRecord) IsAccount() bool {
	if r.ODataType != "" {
		return r.ODataType == userODataType
	}
	return r.ID != ""
}

// BestEmail derives the best-available address, preferring the primary
// mail field and falling back to the principal name.
func (r *DirectoryRecord) BestEmail() string {
	for _, v := range []string{r.Mail, r.UserPrincipalName} {
		if v != "" {
			return v
		}
	}
	return ""
}

// BestDisplayName derives the best-available human name. Fallback order:
// explicit display name, given+family name, principal name, mail.
func (r *DirectoryRecord) BestDisplayName() string {
	candidates := []string{
		r.DisplayName,
		strings.TrimSpace(r.GivenName + " " + r.Surname),
		r.UserPrincipalName,
		r.Mail,
	}
	for _, v := range candidates {
		if v != "" {
			return v
		}
	}
	return ""
}

// Merge fills empty fields of the record from another record of the same
// account, keeping values already present.
func (r *DirectoryRecord) Merge(other *DirectoryRecord) {
	if other == nil {
		return
	}
	if r.Mail == "" {
		r.Mail = other.Mail
	}
	if r.UserPrincipalName == "" {
		r.UserPrincipalName = other.UserPrincipalName
	}
	if r.DisplayName == "" {
		r.DisplayName = other.DisplayName
	}
	if r.GivenName == "" {
		r.GivenName = other.GivenName
	}
	if r.Surname == "" {
		r.Surname = other.Surname
	}
}

// DirectoryPage is one page of a directory listing. NextCursor is an
// opaque continuation URL, empty on the last page.
type DirectoryPage struct {
	Items      []DirectoryRecord
	NextCursor string
}
