package service

import (
	"context"
	"strings"
	"time"

	"wordbook/internal/dictionary"
	"wordbook/internal/domain"
	"wordbook/internal/repository"

	"go.uber.org/zap"
)

// Dictionary looks up English terms
type Dictionary interface {
	Lookup(ctx context.Context, term string) ([]dictionary.Entry, error)
}

// Translator renders English text in Turkish
type Translator interface {
	ToTurkish(ctx context.Context, text string) (string, error)
}

const wordExistsMessage = "This word already exists in your list"

// WordService handles word-related business logic
type WordService struct {
	wordRepo   repository.WordRepository
	userRepo   repository.UserRepository
	dict       Dictionary
	translator Translator
	logger     *zap.Logger
	now        func() time.Time
}

// NewWordService creates a new word service
func NewWordService(
	wordRepo repository.WordRepository,
	userRepo repository.UserRepository,
	dict Dictionary,
	translator Translator,
	logger *zap.Logger,
) *WordService {
	return &WordService{
		wordRepo:   wordRepo,
		userRepo:   userRepo,
		dict:       dict,
		translator: translator,
		logger:     logger,
		now:        time.Now,
	}
}

// AddWord looks up term, translates its primary meaning and stores the result.
// A failed lookup aborts without writing; a failed translation is stored as a placeholder.
func (s *WordService) AddWord(ctx context.Context, term string, userID *int64) (*domain.Word, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.Validation("english word is required")
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.dict.Lookup(ctx, term)
	if err != nil {
		s.logger.Error("Dictionary lookup failed", zap.String("english", term), zap.Error(err))
		return nil, domain.LookupFailed(err)
	}

	meaning, example := domain.MeaningNotFound, domain.ExampleNotFound
	if def := dictionary.FirstDefinition(entries); def != nil {
		if def.Definition != "" {
			meaning = def.Definition
		}
		if def.Example != "" {
			example = def.Example
		}
	}

	turkish, err := s.translator.ToTurkish(ctx, meaning)
	if err != nil {
		s.logger.Warn("Translation failed, storing placeholder", zap.String("english", term), zap.Error(err))
		turkish = domain.TranslationErrorPrefix + err.Error()
	}

	word := &domain.Word{
		English:        term,
		Meaning:        meaning,
		TurkishMeaning: turkish,
		ExampleUsage:   example,
		AddedDate:      s.now(),
		UserID:         userID,
	}
	if err := s.wordRepo.Create(ctx, word); err != nil {
		return nil, err
	}

	s.logger.Info("Word added",
		zap.Int64("word_id", word.ID),
		zap.Int64p("user_id", userID),
		zap.String("english", term),
	)
	return word, nil
}

// ExistsForUser reports whether the user already has term, ignoring case
func (s *WordService) ExistsForUser(ctx context.Context, term string, userID *int64) (bool, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return false, domain.Validation("english word is required")
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return false, err
	}
	return s.wordRepo.ExistsForUser(ctx, term, userID)
}

// AddNewWord adds term unless the user already has it, in which case a
// conflict error is returned and nothing is looked up
func (s *WordService) AddNewWord(ctx context.Context, term string, userID *int64) (*domain.Word, error) {
	exists, err := s.ExistsForUser(ctx, term, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict(wordExistsMessage)
	}
	return s.AddWord(ctx, term, userID)
}

// Recent returns at most limit words in scope, newest first
func (s *WordService) Recent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Word, error) {
	return s.wordRepo.ListRecent(ctx, scope, limit)
}

// List returns the words in scope, newest first when requested
func (s *WordService) List(ctx context.Context, scope domain.Scope, newestFirst bool) ([]domain.Word, error) {
	return s.wordRepo.List(ctx, scope, newestFirst)
}

// Search matches query against English term or meaning
func (s *WordService) Search(ctx context.Context, scope domain.Scope, query string) ([]domain.Word, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Word{}, nil
	}
	return s.wordRepo.Search(ctx, scope, query)
}

// Filter returns the words with the given difficulty level, newest first
func (s *WordService) Filter(ctx context.Context, scope domain.Scope, level string) ([]domain.Word, error) {
	return s.wordRepo.ListByDifficulty(ctx, scope, level)
}

// Get returns a word by ID
func (s *WordService) Get(ctx context.Context, id int64) (*domain.Word, error) {
	return s.wordRepo.GetByID(ctx, id)
}

// FullMeaning lists every definition of w from a fresh lookup.
// A failed lookup falls back to the stored meaning; a lookup without
// definitions gives "".
func (s *WordService) FullMeaning(ctx context.Context, w *domain.Word) string {
	entries, err := s.dict.Lookup(ctx, w.English)
	if err != nil {
		s.logger.Warn("Full meaning lookup failed", zap.Int64("word_id", w.ID), zap.Error(err))
		return w.Meaning
	}
	return dictionary.FullMeaning(entries)
}

// Update replaces the editable fields of a word
func (s *WordService) Update(ctx context.Context, id int64, upd domain.WordUpdate) (*domain.Word, error) {
	upd.English = strings.TrimSpace(upd.English)
	if upd.English == "" {
		return nil, domain.Validation("english word is required")
	}

	word, err := s.wordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(word)

	if err := s.wordRepo.Update(ctx, word); err != nil {
		return nil, err
	}
	return word, nil
}

// Delete removes a word
func (s *WordService) Delete(ctx context.Context, id int64) error {
	if err := s.wordRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Word deleted", zap.Int64("word_id", id))
	return nil
}

func (s *WordService) ensureUser(ctx context.Context, userID *int64) error {
	if userID == nil {
		return nil
	}
	_, err := s.userRepo.GetByID(ctx, *userID)
	return err
}
