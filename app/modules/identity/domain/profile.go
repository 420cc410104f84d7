package identitydomain

import "fmt"

// Profile is the public identity returned from a completed login.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// DemoProfile is returned when no Discord application is configured.
var DemoProfile = Profile{ID: "demo-user", Name: "Demo User", Avatar: ""}

// AvatarURL builds the CDN URL of a Discord avatar hash. No hash means no avatar.
func AvatarURL(userID, hash string) string {
	if hash == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png?size=64", userID, hash)
}
