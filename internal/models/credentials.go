package models

// Known accounts of the demo storefront
const (
	StandardUser   = "standard_user"
	LockedOutUser  = "locked_out_user"
	StandardSecret = "secret_sauce"
)

// Credentials is a login attempt
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsComplete returns true if both username and password are present
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}
