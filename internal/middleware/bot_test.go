package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

type staticLinks map[int64]int64

func (l staticLinks) UserFor(chatID int64) (int64, bool) {
	id, ok := l[chatID]
	return id, ok
}

// fakeContext implements the parts of tele.Context the middleware touches
type fakeContext struct {
	tele.Context
	chat   *tele.Chat
	text   string
	sent   []any
	values map[string]any
}

func (c *fakeContext) Chat() *tele.Chat { return c.chat }
func (c *fakeContext) Text() string { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return nil }
func (c *fakeContext) Get(key string) any { return c.values[key] }
func (c *fakeContext) Set(key string, val any) { c.values[key] = val }
func (c *fakeContext) Send(what any, _ ...any) error {
	c.sent = append(c.sent, what)
	return nil
}

func TestLinkedChat(t *testing.T) {
	links := staticLinks{100: 7}

	tests := []struct {
		name         string
		chatID       int64
		expectCalled bool
		expectUserID any
	}{
		{name: "linked chat", chatID: 100, expectCalled: true, expectUserID: int64(7)},
		{name: "unlinked chat", chatID: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeContext{chat: &tele.Chat{ID: tt.chatID}, text: "apple", values: map[string]any{}}
			called := false
			next := func(tele.Context) error {
				called = true
				return nil
			}

			err := LinkedChat(links, zap.NewNop())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectCalled, called)
			assert.Equal(t, tt.expectUserID, c.values[UserIDKey])
			if !tt.expectCalled {
				assert.Len(t, c.sent, 1)
			}
		})
	}
}
