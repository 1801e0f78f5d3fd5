package bot

import (
	"strings"
	"time"
	"unicode"

	"wordbook/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError acknowledges the callback when the message is already up to date.
// Any other error is returned so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend replaces the callback's message, or sends a new one for commands
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles callbacks not matched by their button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)
	if callback.Unique != "" {
		data = callback.Unique
	}

	switch data {
	case btnStats.Unique:
		return h.handleStats(c)
	case btnRecent.Unique:
		return h.handleRecent(c)
	case btnAddAnyway.Unique:
		return h.handleAddAnyway(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnMainMenu.Unique:
		return h.handleMenu(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("data_raw", callback.Data),
	)
	return c.Respond()
}

// handleStats shows the account's word counts
func (h *Handler) handleStats(c tele.Context) error {
	userID := userIDFrom(c)

	ctx, cancel := requestContext()
	defer cancel()

	scope := domain.ForUser(userID)
	stats, err := h.statsService.Summary(ctx, scope)
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Veriler yüklenemedi"})
	}
	days, err := h.statsService.Days(ctx, scope)
	if err != nil {
		h.logger.Error("Failed to load daily counts", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Veriler yüklenemedi"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnRecent), markup.Row(btnMainMenu))
	return h.editOrSend(c, formatStats(stats, days, time.Now()), markup)
}

// handleRecent shows the latest words of the account
func (h *Handler) handleRecent(c tele.Context) error {
	userID := userIDFrom(c)

	ctx, cancel := requestContext()
	defer cancel()

	words, err := h.wordService.Recent(ctx, domain.ForUser(userID), recentLimit)
	if err != nil {
		h.logger.Error("Failed to load words", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Veriler yüklenemedi"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnStats), markup.Row(btnMainMenu))
	return h.editOrSend(c, formatRecent(words), markup)
}

// handleAddAnyway adds the word the duplicate warning was shown for
func (h *Handler) handleAddAnyway(c tele.Context) error {
	term, ok := h.takePending(c.Chat().ID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Bekleyen kelime yok"})
	}
	_ = c.Respond()
	return h.addWord(c, term, userIDFrom(c))
}

// handleCancel drops the pending word and shows the menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.takePending(c.Chat().ID)
	return h.editOrSend(c, menuText, mainMenuMarkup())
}
