package model

// Contact is one row of the contact source, normalized. Fields carries
// every source column by name for template substitution.
type Contact struct {
	Phone    string
	MatchKey string

	Msg1     string
	Fup1Days int
	Fup1Msg  string
	Fup2Days int
	Fup2Msg  string

	Fields map[string]string
}

// Inert reports whether the contact can never produce an action.
func (c Contact) Inert() bool {
	return c.Phone == "" || c.Msg1 == ""
}
