package domain

// Session describes the hosting CLI's stored credential state.
// repoctl never handles credential material itself; a Session only
// records whether the external CLI reports an active login, and for
// whom, so operations that need one can check it explicitly instead
// of relying on ambient state.
type Session struct {
	Host     string
	User     string
	LoggedIn bool
}
