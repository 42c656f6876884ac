package domain

import (
	"regexp"
	"strings"
	"time"
)

type Role string

const (
	RoleGuest      Role = "guest"
	RoleHotelAdmin Role = "hotel-admin"
	RoleSuperAdmin Role = "super-admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleGuest, RoleHotelAdmin, RoleSuperAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// IsAdmin reports whether the role passes the admin-or-above gate.
func (r Role) IsAdmin() bool {
	return r == RoleHotelAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           int64     `json:"id"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Country      string    `json:"country"`
	PasswordHash string    `json:"-"`
	HotelID      *int64    `json:"hotel_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	// LoginID is an email address or a phone number.
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
	User      *UserInfo `json:"user"`
}

type CreateHotelAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Password  string `json:"password"`
	HotelID   int64  `json:"hotel_id"`
}

type UserInfo struct {
	ID        int64  `json:"id"`
	Role      Role   `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	HotelID   *int64 `json:"hotel_id,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	if r.FirstName == "" {
		return Validationf("first_name is required")
	}
	if r.LastName == "" {
		return Validationf("last_name is required")
	}
	if r.Email == "" {
		return Validationf("email is required")
	}
	if !isValidEmail(r.Email) {
		return Validationf("invalid email format")
	}
	if r.Phone == "" {
		return Validationf("phone is required")
	}
	if !isValidPhone(r.Phone) {
		return Validationf("invalid phone format")
	}
	if r.Country == "" {
		return Validationf("country is required")
	}
	if r.Password == "" {
		return Validationf("password is required")
	}
	if len(r.Password) < 8 {
		return Validationf("password must be at least 8 characters")
	}
	return nil
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.TrimSpace(r.Country)
}

func (r *LoginRequest) Validate() error {
	if r.LoginID == "" {
		return Validationf("login_id is required")
	}
	if r.Password == "" {
		return Validationf("password is required")
	}
	return nil
}

func (r *LoginRequest) Normalize() {
	r.LoginID = strings.TrimSpace(r.LoginID)
	if strings.Contains(r.LoginID, "@") {
		r.LoginID = strings.ToLower(r.LoginID)
	}
}

func (r *CreateHotelAdminRequest) Validate() error {
	reg := RegisterRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Country:   r.Country,
		Password:  r.Password,
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	if r.HotelID <= 0 {
		return Validationf("hotel_id is required")
	}
	return nil
}

func (r *CreateHotelAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.TrimSpace(r.Country)
}

// Helper functions
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[\+]?[\d\s\-\(\)]+$`)
	return phoneRegex.MatchString(phone) && len(phone) >= 7
}

// ToUserInfo converts User to UserInfo (without sensitive data)
func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Country:   u.Country,
		HotelID:   u.HotelID,
	}
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
