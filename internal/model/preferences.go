package model

import (
	"encoding/json"
	"slices"
)

// AvatarColor is a colour used to render a user's default avatar.
type AvatarColor string

const (
	AvatarColorPrimary AvatarColor = "primary"
	AvatarColorPink    AvatarColor = "pink"
	AvatarColorRed     AvatarColor = "red"
	AvatarColorYellow  AvatarColor = "yellow"
	AvatarColorBlue    AvatarColor = "blue"
	AvatarColorGreen   AvatarColor = "green"
	AvatarColorPurple  AvatarColor = "purple"
	AvatarColorOrange  AvatarColor = "orange"
	AvatarColorGray    AvatarColor = "gray"
	AvatarColorAmber   AvatarColor = "amber"
)

// AvatarColors lists every valid avatar colour in a stable order.
var AvatarColors = []AvatarColor{
	AvatarColorPrimary,
	AvatarColorPink,
	AvatarColorRed,
	AvatarColorYellow,
	AvatarColorBlue,
	AvatarColorGreen,
	AvatarColorPurple,
	AvatarColorOrange,
	AvatarColorGray,
	AvatarColorAmber,
}

// Valid reports whether c is a known avatar colour.
func (c AvatarColor) Valid() bool {
	return slices.Contains(AvatarColors, c)
}

// UserPreferences are the effective per-user settings.
type UserPreferences struct {
	Avatar AvatarPreferences `json:"avatar"`
}

// AvatarPreferences configure the default avatar.
type AvatarPreferences struct {
	Color AvatarColor `json:"color"`
}

// DefaultPreferences derives account defaults from the email so that the
// avatar colour is stable for a given address.
func DefaultPreferences(email string) UserPreferences {
	var sum int
	for _, r := range email {
		sum += int(r)
	}

	return UserPreferences{
		Avatar: AvatarPreferences{Color: AvatarColors[sum%len(AvatarColors)]},
	}
}

// GetPreferences merges the stored preference overrides of user onto the
// defaults. Malformed or unknown stored values fall back to the defaults.
func GetPreferences(user User) UserPreferences {
	defaults := DefaultPreferences(user.Email)
	prefs := defaults

	for _, md := range user.Metadata {
		if md.Key != UserMetadataKeyPreferences || len(md.Value) == 0 {
			continue
		}
		if err := json.Unmarshal(md.Value, &prefs); err != nil {
			return defaults
		}
	}

	if !prefs.Avatar.Color.Valid() {
		prefs.Avatar.Color = defaults.Avatar.Color
	}

	return prefs
}
