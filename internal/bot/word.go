package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wordbook/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText treats any plain message as an English word to add
func (h *Handler) handleText(c tele.Context) error {
	userID := userIDFrom(c)
	term := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if term == "" || strings.HasPrefix(term, "/") {
		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	word, err := h.wordService.AddNewWord(ctx, term, &userID)
	if errors.Is(err, domain.ErrConflict) {
		h.setPending(c.Chat().ID, term)
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnAddAnyway, btnCancel))
		return c.Send(fmt.Sprintf("«%s» zaten listenizde. Yine de eklensin mi?", term), markup)
	}
	if err != nil {
		return h.replyAddError(c, term, userID, err)
	}

	return c.Send("✅ Kaydedildi!\n\n"+formatWord(word), mainMenuMarkup())
}

// addWord runs the lookup and translation and replies with the stored word
func (h *Handler) addWord(c tele.Context, term string, userID int64) error {
	ctx, cancel := requestContext()
	defer cancel()

	word, err := h.wordService.AddWord(ctx, term, &userID)
	if err != nil {
		return h.replyAddError(c, term, userID, err)
	}

	return c.Send("✅ Kaydedildi!\n\n"+formatWord(word), mainMenuMarkup())
}

// replyAddError explains a failed add. A missing account means it was
// deleted elsewhere, so the chat is logged out.
func (h *Handler) replyAddError(c tele.Context, term string, userID int64, err error) error {
	switch {
	case errors.Is(err, domain.ErrLookupFailed):
		return c.Send(fmt.Sprintf("«%s» için anlam bulunamadı.", term))
	case errors.Is(err, domain.ErrNotFound):
		h.logger.Info("Linked account is gone, unlinking chat",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Int64("user_id", userID),
		)
		h.unlink(c.Chat().ID)
		return c.Send("Hesabınız bulunamadı. Tekrar giriş yapın: /login <email> <şifre>")
	}

	h.logger.Error("Failed to add word", zap.Int64("user_id", userID), zap.String("english", term), zap.Error(err))
	return c.Send("Kelime kaydedilemedi. Tekrar deneyin.")
}

func formatWord(w *domain.Word) string {
	return fmt.Sprintf("📘 %s\n\n🇬🇧 %s\n🇹🇷 %s\n\n💬 %s", w.English, w.Meaning, w.TurkishMeaning, w.ExampleUsage)
}

// formatStats renders the totals followed by the per-day counts, newest day first
func formatStats(s *domain.Stats, days []domain.Day, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"📊 İstatistikler\n\nToplam: %d\nBugün: %d\nSon 7 gün: %d\nSon ay: %d\nSon yıl: %d",
		s.TotalWords, s.TodayWords, s.Last7Days, s.LastMonth, s.LastYear,
	)

	if len(days) > 0 {
		b.WriteString("\n\n📅 Günlük:\n")
		for i := len(days) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "%s: %d\n", days[i].DisplayString(now), days[i].WordCount)
		}
	}
	return b.String()
}

func formatRecent(words []domain.Word) string {
	if len(words) == 0 {
		return "Henüz kayıtlı kelimeniz yok"
	}

	var b strings.Builder
	b.WriteString("🕘 Son kelimeler:\n\n")
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s — %s (%s)\n", i+1, w.English, w.TurkishMeaning, w.AddedDate.Format("02.01.2006"))
	}
	return b.String()
}
