package middleware

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserIDKey is the telebot context key holding the linked account ID
const UserIDKey = "user_id"

// ChatLinks resolves the account a chat is logged in as
type ChatLinks interface {
	UserFor(chatID int64) (int64, bool)
}

// LinkedChat lets through only chats that are logged in, and stores the account ID in the context
func LinkedChat(links ChatLinks, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return nil
			}

			userID, ok := links.UserFor(chat.ID)
			if !ok {
				logger.Debug("Rejected message from unlinked chat",
					zap.Int64("chat_id", chat.ID),
					zap.String("text", strings.TrimSpace(c.Text())),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Önce giriş yapın: /login <email> <şifre>", ShowAlert: true})
				}
				return c.Send("Önce giriş yapın: /login <email> <şifre>")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
