package domain

// User is a store customer. The identifier is supplied by the caller and is
// not checked for uniqueness.
type User struct {
	ID      string `json:"id" example:"1"`
	Name    string `json:"nombre" example:"Juan"`
	Surname string `json:"apellido" example:"Pérez"`
}

// UserPatch carries the fields supplied in a partial update. Nil fields are
// left untouched.
type UserPatch struct {
	Name    *string `json:"nombre,omitempty"`
	Surname *string `json:"apellido,omitempty"`
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Surname != nil {
		u.Surname = *p.Surname
	}
	return u
}
