package domain

// AuthenticatedFlagAttribute is the body attribute the site renders the
// login state into.
const AuthenticatedFlagAttribute = "data-user-authenticated"

// Session is the per-page-load login state. It is set once and never
// mutated afterwards.
type Session struct {
	Authenticated bool `json:"authenticated"`
}

// ParseAuthenticatedFlag interprets the rendered flag. Only the exact
// string "true" means authenticated.
func ParseAuthenticatedFlag(value string) bool {
	return value == "true"
}

// AuthoritativeTier is the tier preference reads start from.
func (s Session) AuthoritativeTier() Tier {
	if s.Authenticated {
		return TierServer
	}
	return TierCookie
}

// ReaderState is the state handed to handlers instead of a shared global.
type ReaderState struct {
	Session       Session
	Preferences   StringSet
	SavedArticles StringSet
}
