package model

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the full claim set carried by a device token. A token is
// never mutated after issue; premium upgrades issue a brand-new token.
type TokenClaims struct {
	DeviceID  string `json:"deviceId"`
	IsPremium bool   `json:"isPremium"`
	UserID    string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

type RegisterResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	DeviceID string `json:"deviceId"`
}

type UpgradeResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	IsPremium bool   `json:"isPremium"`
}

type SubscriptionStatusResponse struct {
	Success   bool   `json:"success"`
	IsPremium bool   `json:"isPremium"`
	Message   string `json:"message,omitempty"`
}
