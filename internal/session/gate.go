package session

// View identifies one of the three mutually exclusive view sets the
// application can present.
type View int

const (
	// ViewLoading is the single loading screen shown while the bootstrap
	// identity check is in flight. No other view is navigable.
	ViewLoading View = iota

	// ViewApp is the authenticated shell with the admin, trainer, and
	// blog pages. The admin list is the default page; unknown navigation
	// targets resolve to the not-found page.
	ViewApp

	// ViewLogin is the unauthenticated view set: the login form plus the
	// not-found page. No authenticated page is reachable.
	ViewLogin
)

// Route maps a session state to the view set reachable in it. It is a
// total function: the three branches are mutually exclusive and
// exhaustive over the State invariant.
func Route(st State) View {
	if st.IsAuthenticating {
		return ViewLoading
	}
	if st.IsAuthenticated {
		return ViewApp
	}
	return ViewLogin
}
