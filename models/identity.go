// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Identity is the (username, credential) pair attached to every request sent
// to the Newslog origin as the x-user-id and x-user-secret headers.
type Identity struct {
	// Username is the Newslog account name.
	Username string `json:"username"`

	// APIKey is the secret credential issued for the account. It must never
	// appear in logs.
	APIKey string `json:"api_key"`
}

// Complete reports whether both the username and the API key are set.
func (i Identity) Complete() bool {
	return strings.TrimSpace(i.Username) != "" && strings.TrimSpace(i.APIKey) != ""
}

// String implements fmt.Stringer without leaking the credential.
func (i Identity) String() string {
	if i.APIKey == "" {
		return i.Username
	}
	return i.Username + ":***"
}
