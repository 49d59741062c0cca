package domain

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// LoginRequest representa o payload de entrada para o login administrativo.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"segredo"`
}

// LoginResponse carrega o token emitido após um login bem-sucedido.
type LoginResponse struct {
	Token string `json:"token"`
}
