package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	RefreshToken string // opcional: último refresh token emitido
}

// DisplayName devuelve el nombre visible del usuario ("Nombre Apellido").
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
