package model

import "time"

type Role string

const (
	RoleSales   Role = "SALES"
	RoleCreator Role = "CREATOR"
	RoleAdmin   Role = "ADMIN"
)

// 認証は外部。ここでは表示名とロールだけ持つ。
type User struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	Role        Role      `gorm:"type:varchar(20);not null;default:'SALES'" json:"role"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
