// internal/domain/models/user.go
package models

// User is a registered end-user record as reported by the gateway's
// /users endpoint. Field names mirror the gateway's JSON; both "id" and
// "_id" are mapped so Normalize can coalesce them.
type User struct {
	ID             string  `json:"id"`
	MongoID        string  `json:"_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	AuthProvider   string  `json:"authProvider,omitempty"`
	Verified       bool    `json:"verified"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

// Normalize coalesces the primary-key fields into ID.
func (u *User) Normalize() {
	u.ID = CoalesceID(u.ID, u.MongoID)
}

// Provider returns the auth provider for display, defaulting to "local"
// when the gateway omits the field.
func (u *User) Provider() string {
	if u.AuthProvider == "" {
		return "local"
	}
	return u.AuthProvider
}

// SearchFields returns the values the users list filter matches against.
func (u *User) SearchFields() []string {
	return []string{u.Name, u.Email, u.ID, u.MongoID}
}
