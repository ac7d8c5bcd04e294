package domain

// Account is one service-account credential set and the project it authenticates against.
type Account struct {
	Alias       string
	ProjectId   string
	ClientEmail string
	PrivateKey  string
	Path        string
	// Credentials is the raw credential file content handed to the transport.
	Credentials []byte
}

// Keys returns the lookup keys the account is registered under.
func (a Account) Keys() []string {
	if a.Alias == a.ProjectId {
		return []string{a.Alias}
	}
	return []string{a.Alias, a.ProjectId}
}
