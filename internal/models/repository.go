package models

// RepositoryRef is a resolved repository identity produced by the enumerator.
// It is not mutated after creation.
type RepositoryRef struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	CloneURL string `json:"clone_url"`
	Fork     bool   `json:"fork"`
}

// FullName returns the "owner/name" form used in console output.
func (r RepositoryRef) FullName() string {
	if r.Owner == "" {
		return r.Name
	}
	return r.Owner + "/" + r.Name
}
