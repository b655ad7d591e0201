package model

// RoleAdmin is the role allowed to manage the roster
const RoleAdmin = "admin"

// Identity is the subject decoded from a credential
type Identity struct {
	ID  string `json:"id"`
	Rol string `json:"rol"`
}

// IsAdmin reports whether the identity may use admin operations
func (i Identity) IsAdmin() bool {
	return i.Rol == RoleAdmin
}

// Account is a login account held by the stand-in API
type Account struct {
	ID           string `msgpack:"id"`
	Correo       string `msgpack:"correo"`
	PasswordHash string `msgpack:"password_hash"`
	Rol          string `msgpack:"rol"`
}
