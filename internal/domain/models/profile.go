package models

// Profile is the author's public identity, linked 1:1 to an auth user.
// It is distinct from the session credentials themselves: posts reference
// Profile.ID, never the session subject directly.
type Profile struct {
	ID        string  `json:"id" db:"id"`
	UserID    string  `json:"user_id" db:"user_id"`
	FullName  *string `json:"full_name,omitempty" db:"full_name"`
	Bio       *string `json:"bio,omitempty" db:"bio"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"avatar_url"`
}
