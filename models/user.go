package models

// RoleClient adalah satu-satunya role yang boleh membuat sesi di UI client.
// Akun staff/admin milik dashboard internal, bukan aplikasi pemesanan.
const RoleClient = "CLIENT"

// UserIdentity adalah identitas user yang dipersist setelah login.
type UserIdentity struct {
	UserID      int    `json:"userId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// StoredIdentity adalah blob identity di storage, ditambah batas umur.
// Record tanpa ExpiresAt numerik dianggap TIDAK valid (fail closed):
// absennya field bukan berarti "tidak pernah kadaluarsa".
type StoredIdentity struct {
	UserIdentity
	ExpiresAt int64 `json:"expiresAt"`
}

// RegisterRequest adalah body POST /auth/client-register.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

// LoginRequest adalah body POST /auth/login.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// AuthResponse adalah jawaban login/register. Token dan role opsional;
// register lama hanya mengembalikan message.
type AuthResponse struct {
	Message      string `json:"message"`
	UserID       int    `json:"userId"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Role         string `json:"role,omitempty"`
}

// UpdatePasswordRequest adalah body POST /auth/update-password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
