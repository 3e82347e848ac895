package models

import (
	"strconv"
	"strings"
	"time"
)

// Placeholders used when a field is missing.
const (
	QuestionNotFound = "Question not found"
	UnknownUser      = "User"
	UnknownAge       = "N/A"
	Untitled         = "Untitled"
	DateLayout       = "02/01/2006"
)

// ResolvedAnswer pairs an answer with the prompt text of its question.
type ResolvedAnswer struct {
	QuestionID string
	Question   string
	Answer     string
}

// Card is an experience ready to be printed.
type Card struct {
	Key      string
	Title    string
	Author   string
	Initials string
	Age      string
	Avatar   AvatarColor
	Date     string
	Answers  []ResolvedAnswer
}

// QuestionIndex maps question ids to their text. Questions without an id
// are skipped.
func QuestionIndex(questions []Question) map[string]string {
	idx := make(map[string]string, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			continue
		}
		idx[q.ID] = q.Text
	}
	return idx
}

// ResolveAnswers substitutes question ids with their text. An id missing
// from index resolves to QuestionNotFound.
func ResolveAnswers(content []QuestionAnswer, index map[string]string) []ResolvedAnswer {
	out := make([]ResolvedAnswer, 0, len(content))
	for _, qa := range content {
		text, ok := index[qa.QuestionID]
		if !ok || text == "" {
			text = QuestionNotFound
		}
		out = append(out, ResolvedAnswer{QuestionID: qa.QuestionID, Question: text, Answer: qa.Answer})
	}
	return out
}

// BuildCards resolves every experience against the supplied questions.
func BuildCards(experiences []Experience, questions []Question) []Card {
	index := QuestionIndex(questions)
	cards := make([]Card, 0, len(experiences))
	for _, e := range experiences {
		name := DisplayName(e.UserName)
		cards = append(cards, Card{
			Key:      e.Key(),
			Title:    DisplayTitle(e.Title),
			Author:   name,
			Initials: Initials(e.UserName),
			Age:      DisplayAge(e.UserAge),
			Avatar:   e.AvatarColor,
			Date:     DisplayDate(e.CreatedAt.Time),
			Answers:  ResolveAnswers(e.Content, index),
		})
	}
	return cards
}

func DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return UnknownUser
	}
	return name
}

func DisplayAge(age int) string {
	if age <= 0 {
		return UnknownAge
	}
	return strconv.Itoa(age)
}

func DisplayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return Untitled
	}
	return title
}

// DisplayDate formats t as day/month/year; the zero time yields "".
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Initials returns the upper-cased first letters of the first two words of
// name, or "?" for an empty name.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	if len(words) > 2 {
		words = words[:2]
	}
	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
