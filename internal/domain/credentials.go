package domain

// AdminCredentials — единственная учётная запись администратора.
// Хранится одной записью admin:credentials, ротация не поддерживается.
type AdminCredentials struct {
	Username string
	Password string
}

func NewAdminCredentials(username, password string) *AdminCredentials {
	return &AdminCredentials{
		Username: username,
		Password: password,
	}
}
