package domain

// Privilege names a platform capability that can be granted to an actor.
type Privilege string

const (
	// PrivilegeManageDomains allows listing, creating and editing domains.
	PrivilegeManageDomains Privilege = "MANAGE_DOMAINS"
)

// Session is the caller context of a request: who is calling and whether the
// identity was authenticated. It is built once per request and never mutated.
type Session struct {
	// Actor is the URN of the calling user.
	Actor Urn
	// Authenticated is true when Actor was proven by a verified credential.
	Authenticated bool
}

// Anonymous is the session of a caller that presented no credential.
var Anonymous = Session{} //nolint: gochecknoglobals
