package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordbook/internal/dictionary"
	"wordbook/internal/domain"
	"wordbook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wordDeps struct {
	words *testutil.MockWordRepository
	users *testutil.MockUserRepository
	dict  *testutil.MockDictionary
	tr    *testutil.MockTranslator
}

func newWordService(now time.Time) (*WordService, wordDeps) {
	d := wordDeps{
		words: new(testutil.MockWordRepository),
		users: new(testutil.MockUserRepository),
		dict:  new(testutil.MockDictionary),
		tr:    new(testutil.MockTranslator),
	}
	svc := NewWordService(d.words, d.users, d.dict, d.tr, testutil.NewTestLogger())
	svc.now = func() time.Time { return now }
	return svc, d
}

func (d wordDeps) assertExpectations(t *testing.T) {
	d.words.AssertExpectations(t)
	d.users.AssertExpectations(t)
	d.dict.AssertExpectations(t)
	d.tr.AssertExpectations(t)
}

func int64Ptr(v int64) *int64 { return &v }

func TestWordService_AddWord(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	userID := int64Ptr(5)

	tests := []struct {
		name            string
		term            string
		userID          *int64
		setupMocks      func(d wordDeps)
		expectedError   error
		expectedMeaning string
		expectedExample string
		expectedTurkish string
	}{
		{
			name:   "full entry for user",
			term:   "apple",
			userID: userID,
			setupMocks: func(d wordDeps) {
				d.users.On("GetByID", mock.Anything, int64(5)).Return(testutil.NewTestUser(5, "a@b.c", "pw"), nil)
				d.dict.On("Lookup", mock.Anything, "apple").Return(testutil.NewTestEntries("apple",
					dictionary.Definition{Definition: "A round fruit.", Example: "I ate an apple."},
					dictionary.Definition{Definition: "Second sense."},
				), nil)
				d.tr.On("ToTurkish", mock.Anything, "A round fruit.").Return("Yuvarlak bir meyve.", nil)
				d.words.On("Create", mock.Anything, mock.AnythingOfType("*domain.Word")).
					Run(func(args mock.Arguments) { args.Get(1).(*domain.Word).ID = 11 }).
					Return(nil)
			},
			expectedMeaning: "A round fruit.",
			expectedExample: "I ate an apple.",
			expectedTurkish: "Yuvarlak bir meyve.",
		},
		{
			name: "no definitions uses placeholders",
			term: "zzz",
			setupMocks: func(d wordDeps) {
				d.dict.On("Lookup", mock.Anything, "zzz").Return([]dictionary.Entry{{Word: "zzz"}}, nil)
				d.tr.On("ToTurkish", mock.Anything, domain.MeaningNotFound).Return("Anlam yok", nil)
				d.words.On("Create", mock.Anything, mock.AnythingOfType("*domain.Word")).Return(nil)
			},
			expectedMeaning: domain.MeaningNotFound,
			expectedExample: domain.ExampleNotFound,
			expectedTurkish: "Anlam yok",
		},
		{
			name: "translation failure is stored",
			term: "apple",
			setupMocks: func(d wordDeps) {
				d.dict.On("Lookup", mock.Anything, "apple").Return(testutil.NewTestEntries("apple",
					dictionary.Definition{Definition: "A round fruit."},
				), nil)
				d.tr.On("ToTurkish", mock.Anything, "A round fruit.").Return("", errors.New("connection refused"))
				d.words.On("Create", mock.Anything, mock.AnythingOfType("*domain.Word")).Return(nil)
			},
			expectedMeaning: "A round fruit.",
			expectedExample: domain.ExampleNotFound,
			expectedTurkish: domain.TranslationErrorPrefix + "connection refused",
		},
		{
			name: "lookup failure writes nothing",
			term: "qwzx",
			setupMocks: func(d wordDeps) {
				d.dict.On("Lookup", mock.Anything, "qwzx").Return(nil, dictionary.ErrNoEntries)
			},
			expectedError: domain.ErrLookupFailed,
		},
		{
			name:   "unknown user",
			term:   "apple",
			userID: userID,
			setupMocks: func(d wordDeps) {
				d.users.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.NotFound("user not found"))
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "empty term",
			term:          "   ",
			setupMocks:    func(d wordDeps) {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newWordService(now)
			tt.setupMocks(d)

			word, err := svc.AddWord(context.Background(), tt.term, tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, word)
				d.words.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.term, word.English)
				assert.Equal(t, tt.expectedMeaning, word.Meaning)
				assert.Equal(t, tt.expectedExample, word.ExampleUsage)
				assert.Equal(t, tt.expectedTurkish, word.TurkishMeaning)
				assert.Equal(t, now, word.AddedDate)
				assert.Equal(t, tt.userID, word.UserID)
			}
			d.assertExpectations(t)
		})
	}
}

func TestWordService_AddWord_LookupErrorKeepsCause(t *testing.T) {
	svc, d := newWordService(time.Now())
	cause := errors.New("dial tcp: timeout")
	d.dict.On("Lookup", mock.Anything, "apple").Return(nil, cause)

	_, err := svc.AddWord(context.Background(), "apple", nil)

	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	assert.ErrorIs(t, err, cause)
}

func TestWordService_ExistsForUser(t *testing.T) {
	tests := []struct {
		name          string
		term          string
		userID        *int64
		setupMocks    func(d wordDeps)
		expected      bool
		expectedError error
	}{
		{
			name:   "exists",
			term:   " Apple ",
			userID: int64Ptr(1),
			setupMocks: func(d wordDeps) {
				d.users.On("GetByID", mock.Anything, int64(1)).Return(testutil.NewTestUser(1, "a@b.c", "pw"), nil)
				d.words.On("ExistsForUser", mock.Anything, "Apple", int64Ptr(1)).Return(true, nil)
			},
			expected: true,
		},
		{
			name: "anonymous",
			term: "apple",
			setupMocks: func(d wordDeps) {
				d.words.On("ExistsForUser", mock.Anything, "apple", (*int64)(nil)).Return(false, nil)
			},
		},
		{
			name:   "unknown user",
			term:   "apple",
			userID: int64Ptr(9),
			setupMocks: func(d wordDeps) {
				d.users.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.NotFound("user not found"))
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "empty term",
			term:          "",
			setupMocks:    func(d wordDeps) {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newWordService(time.Now())
			tt.setupMocks(d)

			exists, err := svc.ExistsForUser(context.Background(), tt.term, tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, exists)
			}
			d.assertExpectations(t)
		})
	}
}

func TestWordService_Search_EmptyQuery(t *testing.T) {
	svc, d := newWordService(time.Now())

	words, err := svc.Search(context.Background(), domain.AllUsers(), "  ")

	assert.NoError(t, err)
	assert.Empty(t, words)
	assert.NotNil(t, words)
	d.words.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestWordService_AddNewWord(t *testing.T) {
	userID := int64(2)

	t.Run("existing word is a conflict", func(t *testing.T) {
		svc, d := newWordService(time.Now())
		d.users.On("GetByID", mock.Anything, userID).Return(testutil.NewTestUser(userID, "a@b.c", "secret"), nil)
		d.words.On("ExistsForUser", mock.Anything, "apple", &userID).Return(true, nil)

		word, err := svc.AddNewWord(context.Background(), "apple", &userID)

		assert.Nil(t, word)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, "This word already exists in your list", err.Error())
		d.dict.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
		d.assertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, d := newWordService(time.Now())
		d.users.On("GetByID", mock.Anything, userID).Return(nil, domain.NotFound("user not found"))

		_, err := svc.AddNewWord(context.Background(), "apple", &userID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.words.AssertNotCalled(t, "ExistsForUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWordService_Recent(t *testing.T) {
	svc, d := newWordService(time.Now())
	scope := domain.ForUser(2)
	recent := []domain.Word{*testutil.NewTestWord(5, int64Ptr(2), "zebra", time.Now())}
	d.words.On("ListRecent", mock.Anything, scope, 10).Return(recent, nil)

	words, err := svc.Recent(context.Background(), scope, 10)

	require.NoError(t, err)
	assert.Equal(t, recent, words)
	d.assertExpectations(t)
}

func TestWordService_FullMeaning(t *testing.T) {
	word := testutil.NewTestWord(3, nil, "run", time.Now())

	t.Run("joins definitions", func(t *testing.T) {
		svc, d := newWordService(time.Now())
		d.dict.On("Lookup", mock.Anything, "run").Return(testutil.NewTestEntries("run",
			dictionary.Definition{Definition: "To move fast."},
			dictionary.Definition{Definition: "To operate."},
		), nil)

		assert.Equal(t, "1. To move fast.. 2. To operate.. ", svc.FullMeaning(context.Background(), word))
	})

	t.Run("empty when lookup has no definitions", func(t *testing.T) {
		svc, d := newWordService(time.Now())
		d.dict.On("Lookup", mock.Anything, "run").Return([]dictionary.Entry{{Word: "run"}}, nil)

		assert.Equal(t, "", svc.FullMeaning(context.Background(), word))
	})

	t.Run("falls back to stored meaning", func(t *testing.T) {
		svc, d := newWordService(time.Now())
		d.dict.On("Lookup", mock.Anything, "run").Return(nil, errors.New("down"))

		assert.Equal(t, word.Meaning, svc.FullMeaning(context.Background(), word))
	})
}

func TestWordService_Update(t *testing.T) {
	added := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	newDate := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		update        domain.WordUpdate
		setupMocks    func(d wordDeps)
		expectedDate  time.Time
		expectedError error
	}{
		{
			name:   "keeps date when omitted",
			update: domain.WordUpdate{English: "pear", Meaning: "m", DifficultyLevel: "Hard"},
			setupMocks: func(d wordDeps) {
				d.words.On("GetByID", mock.Anything, int64(1)).Return(testutil.NewTestWord(1, nil, "apple", added), nil)
				d.words.On("Update", mock.Anything, mock.AnythingOfType("*domain.Word")).Return(nil)
			},
			expectedDate: added,
		},
		{
			name:   "replaces date",
			update: domain.WordUpdate{English: "pear", AddedDate: &newDate},
			setupMocks: func(d wordDeps) {
				d.words.On("GetByID", mock.Anything, int64(1)).Return(testutil.NewTestWord(1, nil, "apple", added), nil)
				d.words.On("Update", mock.Anything, mock.AnythingOfType("*domain.Word")).Return(nil)
			},
			expectedDate: newDate,
		},
		{
			name:   "missing word",
			update: domain.WordUpdate{English: "pear"},
			setupMocks: func(d wordDeps) {
				d.words.On("GetByID", mock.Anything, int64(1)).Return(nil, domain.NotFound("word not found"))
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "empty english",
			update:        domain.WordUpdate{English: ""},
			setupMocks:    func(d wordDeps) {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newWordService(time.Now())
			tt.setupMocks(d)

			word, err := svc.Update(context.Background(), 1, tt.update)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.update.English, word.English)
				assert.Equal(t, tt.update.DifficultyLevel, word.DifficultyLevel)
				assert.Equal(t, tt.expectedDate, word.AddedDate)
			}
			d.assertExpectations(t)
		})
	}
}

func TestWordService_Delete(t *testing.T) {
	svc, d := newWordService(time.Now())
	d.words.On("Delete", mock.Anything, int64(4)).Return(domain.NotFound("word not found"))

	err := svc.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	d.assertExpectations(t)
}
