package models

import (
	"time"

	"gorm.io/gorm"
)

// Application roles. Every account carries exactly one.
const (
	RoleAdmin        = "ADMIN"
	RoleSecurity     = "SECURITY"
	RoleOfficer      = "OFFICER"
	RoleStoreManager = "STORE_MANAGER"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// IsApprover reports whether the account may act on approvals.
func (u *User) IsApprover() bool {
	return u.Role == RoleOfficer || u.Role == RoleAdmin
}

type LoginLog struct {
	gorm.Model
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent"`
	LoginAt   time.Time  `json:"login_at"`
	LogoutAt  *time.Time `json:"logout_at"`
}
