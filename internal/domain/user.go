package domain

import "time"

type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	LastLogin time.Time `json:"lastLogin,omitempty"`
}

type Settings struct {
	Notifications bool   `json:"notifications"`
	TwoFactorAuth bool   `json:"twoFactorAuth"`
	Language      string `json:"language"`
	Currency      string `json:"currency"`
}

func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		TwoFactorAuth: false,
		Language:      "en",
		Currency:      "INR",
	}
}
