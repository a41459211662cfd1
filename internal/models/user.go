package models

const (
	AccountSimple   = "simple"
	AccountExternal = "external"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Login        string `gorm:"uniqueIndex;not null" json:"login"`
	PasswordHash string `json:"-"`
	Email        string `json:"email,omitempty"`
	AccountKind  string `gorm:"not null;default:simple" json:"account_kind"`
}
