package models

// AvatarColor tags a user's avatar. The backend may send values outside the
// known set; they are kept verbatim and rendered with a neutral marker.
type AvatarColor string

const (
	AvatarBlue   AvatarColor = "Blue"
	AvatarGreen  AvatarColor = "Green"
	AvatarRed    AvatarColor = "Red"
	AvatarOrange AvatarColor = "Orange"
	AvatarPurple AvatarColor = "Purple"
	AvatarGrey   AvatarColor = "Grey"
)

var avatarMarkers = map[AvatarColor]string{
	AvatarBlue:   "\x1b[44m",
	AvatarGreen:  "\x1b[42m",
	AvatarRed:    "\x1b[41m",
	AvatarOrange: "\x1b[43m",
	AvatarPurple: "\x1b[45m",
	AvatarGrey:   "\x1b[47m",
}

// Valid reports whether c is one of the known colors.
func (c AvatarColor) Valid() bool {
	_, ok := avatarMarkers[c]
	return ok
}

// Badge renders text on the avatar's background color for a terminal.
// Unknown or empty colors produce the text in brackets.
func (c AvatarColor) Badge(text string) string {
	if !c.Valid() {
		return "[" + text + "]"
	}
	return avatarMarkers[c] + " " + text + " \x1b[0m"
}
