package models

// Actor is the authenticated user on whose behalf a request runs. It is
// supplied by the identity gateway in front of this service; this service
// performs authorization only, never authentication.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin"`
}
