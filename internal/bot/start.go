package bot

import (
	"errors"

	"wordbook/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const menuText = "🏠 Ana menü\n\nİngilizce bir kelime gönderin ya da bir işlem seçin:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("Chat started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	if _, ok := h.UserFor(chatID); !ok {
		return c.Send("Merhaba! Kelime defterinizi kullanmak için giriş yapın:\n/login <email> <şifre>")
	}
	return c.Send(menuText, mainMenuMarkup())
}

// handleLogin handles /login <email> <password>
func (h *Handler) handleLogin(c tele.Context) error {
	chatID := c.Chat().ID

	args := c.Args()
	if len(args) != 2 {
		return c.Send("Kullanım: /login <email> <şifre>")
	}

	// the message holds a password, remove it from the chat
	if msg := c.Message(); msg != nil {
		if err := c.Bot().Delete(msg); err != nil {
			h.logger.Debug("Failed to delete login message", zap.Error(err))
		}
	}

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.userService.Authenticate(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation) {
			return c.Send("Geçersiz email veya şifre")
		}
		h.logger.Error("Failed to authenticate chat", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send("Bir hata oluştu. Daha sonra tekrar deneyin.")
	}

	h.link(chatID, user.ID)
	h.logger.Info("Chat linked", zap.Int64("chat_id", chatID), zap.Int64("user_id", user.ID))

	return c.Send("✅ Giriş yapıldı!\n\n"+menuText, mainMenuMarkup())
}

// handleLogout handles /logout
func (h *Handler) handleLogout(c tele.Context) error {
	chatID := c.Chat().ID
	h.unlink(chatID)
	h.logger.Info("Chat unlinked", zap.Int64("chat_id", chatID))
	return c.Send("Çıkış yapıldı")
}

// handleMenu shows the main menu
func (h *Handler) handleMenu(c tele.Context) error {
	return h.editOrSend(c, menuText, mainMenuMarkup())
}
