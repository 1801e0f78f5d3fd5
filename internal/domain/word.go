package domain

import "time"

// Placeholders stored when the dictionary or translation API gives nothing usable
const (
	MeaningNotFound        = "Anlam bulunamadı"
	ExampleNotFound        = "Örnek cümle bulunamadı"
	TranslationErrorPrefix = "Çeviri hatası: "
)

// Word represents a vocabulary entry
type Word struct {
	ID              int64     `json:"id"`
	English         string    `json:"english"`
	Meaning         string    `json:"meaning"`
	TurkishMeaning  string    `json:"turkishMeaning"`
	ExampleUsage    string    `json:"exampleUsage"`
	DifficultyLevel string    `json:"difficultyLevel"`
	AddedDate       time.Time `json:"addedDate"`
	UserID          *int64    `json:"-"`
}

// WordUpdate holds the replaceable fields of a word
type WordUpdate struct {
	English         string
	Meaning         string
	TurkishMeaning  string
	ExampleUsage    string
	DifficultyLevel string
	AddedDate       *time.Time
}

// Apply copies the update onto w. A nil AddedDate keeps the current value.
func (u WordUpdate) Apply(w *Word) {
	w.English = u.English
	w.Meaning = u.Meaning
	w.TurkishMeaning = u.TurkishMeaning
	w.ExampleUsage = u.ExampleUsage
	w.DifficultyLevel = u.DifficultyLevel
	if u.AddedDate != nil {
		w.AddedDate = *u.AddedDate
	}
}

// Scope restricts word queries to one owner or to all words
type Scope struct {
	UserID *int64
}

// AllUsers returns an unscoped query scope
func AllUsers() Scope {
	return Scope{}
}

// ForUser returns a scope limited to words owned by userID
func ForUser(userID int64) Scope {
	return Scope{UserID: &userID}
}

// IsAll reports whether the scope spans every word
func (s Scope) IsAll() bool {
	return s.UserID == nil
}
