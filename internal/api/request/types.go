package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}
