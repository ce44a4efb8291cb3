package auth

// LoginForm is the sign-in form payload.
type LoginForm struct {
	Username   string `form:"username"`
	Password   string `form:"password"`
	RememberMe bool   `form:"remember_me"`
}

// RegisterForm is the account registration form payload.
type RegisterForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

// CreateAdminForm bootstraps an administrator account. SetupToken is only
// honoured while the system has no admin yet.
type CreateAdminForm struct {
	Username   string `form:"username"`
	Email      string `form:"email"`
	Password   string `form:"password"`
	SetupToken string `form:"setup_token"`
}
