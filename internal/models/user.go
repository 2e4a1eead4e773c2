package models

import "time"

type UserStatus string

const (
	UserActive              UserStatus = "ACTIVE"
	UserInactive            UserStatus = "INACTIVE"
	UserSuspended           UserStatus = "SUSPENDED"
	UserPendingVerification UserStatus = "PENDING_VERIFICATION"
)

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
	RoleVendor   UserRole = "VENDOR"
	RoleSupport  UserRole = "SUPPORT"
)

type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber string     `json:"phoneNumber"`
	Status      UserStatus `json:"status"`
	Role        UserRole   `json:"role"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type UserRegistration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
