package client

// Session identifies the authenticated user for every data-access call. It is
// created once by Login or Register, passed by reference into each component,
// and discarded on logout; nothing in this package keeps ambient auth state.
type Session struct {
	UserID uint
	Token  string
}
