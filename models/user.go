package models

const RoleUser = "User"

type User struct {
	ID   int64  `json:"id"   gorm:"primaryKey"`
	Name string `json:"name"`
	Role string `json:"role" gorm:"default:User"`
}

// Elevated reports whether the user holds any role other than the default one.
func (u *User) Elevated() bool {
	return u.Role != "" && u.Role != RoleUser
}
