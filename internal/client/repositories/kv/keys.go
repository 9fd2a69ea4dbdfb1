package kv

// Keys holds the fully namespaced key of every record the client persists.
type Keys struct {
	User               string
	Token              string
	RegisteredUsers    string
	RegisteredUsersSeq string
	Answers            string
	SelectedPortfolio  string
}

// NewKeys namespaces the record names with prefix, e.g. "@InvestApp:user".
func NewKeys(prefix string) Keys {
	return Keys{
		User:               prefix + "user",
		Token:              prefix + "token",
		RegisteredUsers:    prefix + "registeredUsers",
		RegisteredUsersSeq: prefix + "registeredUsersSeq",
		Answers:            prefix + "questionnaireAnswers",
		SelectedPortfolio:  prefix + "selectedPortfolio",
	}
}
