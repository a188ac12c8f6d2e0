package forms

import "strings"

const msgBadCredentials = "Please enter a correct username and password. Note that both fields may be case-sensitive."

type LoginForm struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`

	Errors Errors `form:"-"`
}

func NewLoginForm(next string) *LoginForm {
	return &LoginForm{Next: next, Errors: Errors{}}
}

func (f *LoginForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.Username = strings.TrimSpace(f.Username)

	check(f, f.Errors)
	return len(f.Errors) == 0
}

func (f *LoginForm) InvalidCredentials() {
	f.Errors.Add(NonField, msgBadCredentials)
}
