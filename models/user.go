package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Base
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Name        string `json:"name"`
	Role        Role   `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	FirebaseUID string `gorm:"index" json:"firebaseUid,omitempty"`
	Picture     string `json:"picture,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func ValidRole(r string) bool {
	return Role(r) == RoleUser || Role(r) == RoleAdmin
}
