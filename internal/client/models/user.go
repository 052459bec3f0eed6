package models

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var aux struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = User(aux.plain)
	if u.ID.IsZero() {
		u.ID = aux.MongoID
	}
	return nil
}

// Initial is the upper-cased first letter of the name, or "U" when the name
// is empty. Shown as the avatar in the navigation bar.
func (u *User) Initial() string {
	if u == nil || u.Name == "" {
		return "U"
	}
	r, _ := utf8.DecodeRuneInString(u.Name)
	return strings.ToUpper(string(r))
}
