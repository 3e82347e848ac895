package models

type QuestionAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type Question struct {
	ID       string `json:"_id,omitempty"`
	IsActive bool   `json:"isActive"`
	Text     string `json:"text"`
}

// Experience is a community post. The backend identifies it either by
// "_id" or by "id" depending on the endpoint.
type Experience struct {
	ID          string           `json:"_id,omitempty"`
	AltID       string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	Content     []QuestionAnswer `json:"content"`
	User        *Identity        `json:"user,omitempty"`
	UserID      string           `json:"userId,omitempty"`
	UserName    string           `json:"userName"`
	UserAge     int              `json:"userAge"`
	AvatarColor AvatarColor      `json:"avatarColor"`
	CreatedAt   Timestamp        `json:"createdAt"`
	UpdatedAt   *Timestamp       `json:"updatedAt,omitempty"`
}

// Key returns whichever identifier the backend populated.
func (e Experience) Key() string {
	if e.ID != "" {
		return e.ID
	}
	return e.AltID
}

// ExperienceDraft is the body sent when creating or updating an experience.
type ExperienceDraft struct {
	Title   string           `json:"title" validate:"notblank"`
	Content []QuestionAnswer `json:"content" validate:"answered"`
}
