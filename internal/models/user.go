package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleDevops    = "devops"
	RoleDeveloper = "developer"
	RoleReadonly  = "readonly"
)

const (
	LanguagePL = "pl"
	LanguageEN = "en"
)

type User struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Imie                 string     `gorm:"not null" json:"imie"`
	Nazwisko             string     `gorm:"not null;default:''" json:"nazwisko"`
	Login                string     `gorm:"uniqueIndex;not null" json:"login"`
	PasswordHash         string     `gorm:"not null" json:"-"`
	Rola                 string     `gorm:"not null;default:readonly" json:"rola"`
	Language             string     `gorm:"not null;default:pl" json:"language"`
	AvatarURL            string     `gorm:"not null;default:''" json:"avatarUrl"`
	ResetPasswordToken   string     `gorm:"not null;default:'';index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// Roles returns the closed set of assignable roles. The client-side "guest"
// display role is intentionally absent: it is never persisted.
func Roles() []string {
	return []string{RoleAdmin, RoleDevops, RoleDeveloper, RoleReadonly}
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDevops, RoleDeveloper, RoleReadonly:
		return true
	default:
		return false
	}
}

func IsValidLanguage(language string) bool {
	return language == LanguagePL || language == LanguageEN
}
