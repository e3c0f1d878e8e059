package dto

// LoginRequest represents the credential payload for admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// SessionResponse represents an issued session token and its subject
type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresAt string        `json:"expires_at"`
	Admin     AdminResponse `json:"admin"`
}

// AdminResponse represents admin account data in responses. The password
// hash never crosses this boundary.
type AdminResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	TenantID  string `json:"tenant_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

// MeResponse represents the authenticated principal as seen by the client
type MeResponse struct {
	AdminID   string `json:"admin_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TenantID  string `json:"tenant_id,omitempty"`
	IssuedAt  string `json:"issued_at"`
	ExpiresAt string `json:"expires_at"`
}
