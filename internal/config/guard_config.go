package config

import "strings"

const (
	bypassPrincipalsVar = "BYPASS_PRINCIPALS"

	// defaultBypassPrincipal is the stock super-admin identity exempt from
	// the inactive-workspace gate.
	defaultBypassPrincipal = "admin@playercore.com.br"
)

type GuardConfig interface {
	GetBypassPrincipals() []string
}

type Guard struct{}

var _ GuardConfig = Guard{}

// GetBypassPrincipals returns the emails exempt from the inactive-workspace
// gate, read as a comma-separated list. Emails are matched exactly as
// stored.
func (Guard) GetBypassPrincipals() []string {
	raw := GetEnv(bypassPrincipalsVar, defaultBypassPrincipal)

	var emails []string
	for _, email := range strings.Split(raw, ",") {
		email = strings.TrimSpace(email)
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}
