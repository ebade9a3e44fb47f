package forms

import "strings"

type RegisterForm struct {
	Name     string `form:"name"`
	Password string `form:"password"`
}

func (f *RegisterForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Password = strings.TrimSpace(f.Password)

	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("password", f.Password); err != nil {
		return err
	}
	return nil
}

type LoginForm struct {
	Name     string `form:"name"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Password = strings.TrimSpace(f.Password)

	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("password", f.Password); err != nil {
		return err
	}
	return nil
}
