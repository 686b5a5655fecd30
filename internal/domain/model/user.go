package model

// User is the profile shown in the header and profile tab. It is created once per session.
type User struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// FirstName returns the leading word of the user name.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
