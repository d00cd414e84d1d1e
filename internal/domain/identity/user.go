package identity

import (
	"strings"

	"github.com/geoffkats/accounting-system/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role determines what a user may administer
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
)

// Valid reports whether the role is known.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAccountant
}

// User is an application account. Session handling lives outside this
// service; the entity exists so the seeder can install the initial users.
type User struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'accountant'" json:"role"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(name, email, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if !role.Valid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
