package session

// Identity is the caller identity bound to a request. It is a plain value,
// independent of the stored User row.
type Identity struct {
	Email         string // Owner email, lowercased; empty when anonymous
	Authenticated bool   // Whether a live session backs this identity
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}
