package domain

// Principal is the identified caller derived from a bearer token. It is
// recomputed on every request and never persisted.
type Principal struct {
	Username string `json:"username"`
}
