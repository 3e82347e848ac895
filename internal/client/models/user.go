package models

// Identity is the minimal record stored next to the bearer token.
// ID is empty when the backend did not return one at login.
type Identity struct {
	ID          string      `json:"_id,omitempty"`
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	AvatarColor AvatarColor `json:"avatarColor"`
}

// FullName joins name and surname, skipping empty parts.
func (i Identity) FullName() string {
	switch {
	case i.Name == "":
		return i.Surname
	case i.Surname == "":
		return i.Name
	default:
		return i.Name + " " + i.Surname
	}
}

// AuthData is the payload of a successful login.
type AuthData struct {
	ID          string      `json:"_id,omitempty"`
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	AvatarColor AvatarColor `json:"avatarColor"`
	Token       string      `json:"token"`
}

// Split separates the credential into the identity and the token.
func (a AuthData) Split() (Identity, string) {
	return Identity{
		ID:          a.ID,
		Name:        a.Name,
		Surname:     a.Surname,
		AvatarColor: a.AvatarColor,
	}, a.Token
}

// UserProfile is fetched on demand and never cached.
type UserProfile struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	Email       string      `json:"email"`
	DateOfBirth string      `json:"dateOfBirth"`
	AvatarColor AvatarColor `json:"avatarColor,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

// RegisterResult is the backend's answer to a registration.
type RegisterResult struct {
	Token   string   `json:"token,omitempty"`
	User    Identity `json:"user"`
	Message string   `json:"message,omitempty"`
}

type ContactMessage struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}
