package models

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string // admin, hr, employee
	CreatedAt    time.Time
}

func (u *User) Doc() map[string]any {
	return map[string]any{
		"Username":     u.Username,
		"Email":        u.Email,
		"PasswordHash": u.PasswordHash,
		"Role":         u.Role,
		"CreatedAt":    timeDoc(u.CreatedAt),
	}
}

func UserFromDoc(id string, doc map[string]any) User {
	return User{
		ID:           id,
		Username:     docString(doc, "Username"),
		Email:        docString(doc, "Email"),
		PasswordHash: docString(doc, "PasswordHash"),
		Role:         docString(doc, "Role"),
		CreatedAt:    docTime(doc, "CreatedAt"),
	}
}
