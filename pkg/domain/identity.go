package domain

import (
	"fmt"
	"time"
)

// Identity is the caller's authenticated reference. Every call except
// register/login requires one.
type Identity struct {
	// Opaque user id assigned by the backend.
	UserID string `json:"user_id"`

	// Bearer credential, empty when talking to a dev backend that
	// identifies callers by user id alone.
	AccessToken string `json:"access_token"`

	// Refresh token, if any.
	RefreshToken string `json:"refresh_token"`

	// When the access token expires in unix time.
	Expires int64 `json:"expires"`
}

// NewIdentity builds an Identity with the Expires time set from a ttl in seconds.
func NewIdentity(userID, access, refresh string, ttl int) *Identity {
	return &Identity{
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
		Expires:      time.Now().UTC().Add(time.Duration(ttl) * time.Second).Unix(),
	}
}

// HasExpired returns if the time now is past Expires.
func (i *Identity) HasExpired() bool {
	if i.Expires == 0 {
		return false
	}
	return time.Now().UTC().Unix() >= i.Expires
}

// Profile is the backend's view of the current user.
type Profile struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

func (p *Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("profile missing user id")
	}
	return nil
}
