// Package bot is a Telegram front end for the word book.
package bot

import (
	"context"
	"sync"
	"time"

	"wordbook/internal/middleware"
	"wordbook/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	recentLimit    = 10
	requestTimeout = 30 * time.Second
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	userService  *service.UserService
	wordService  *service.WordService
	statsService *service.StatsService
	logger       *zap.Logger

	// chat ID -> account ID, and chat ID -> word awaiting "add anyway"
	links   map[int64]int64
	pending map[int64]string
	mu      sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userService *service.UserService,
	wordService *service.WordService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		userService:  userService,
		wordService:  wordService,
		statsService: statsService,
		logger:       logger,
		links:        make(map[int64]int64),
		pending:      make(map[int64]string),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/login", h.handleLogin)

	// Everything else needs a linked chat
	g := h.bot.Group()
	g.Use(middleware.LinkedChat(h, h.logger))

	g.Handle("/logout", h.handleLogout)
	g.Handle(tele.OnText, h.handleText)

	g.Handle(&btnStats, h.handleStats)
	g.Handle(&btnRecent, h.handleRecent)
	g.Handle(&btnAddAnyway, h.handleAddAnyway)
	g.Handle(&btnCancel, h.handleCancel)
	g.Handle(&btnMainMenu, h.handleMenu)

	// Generic callback handler for buttons whose unique did not come through
	g.Handle(tele.OnCallback, h.handleCallback)
}

// UserFor returns the account the chat is logged in as
func (h *Handler) UserFor(chatID int64) (int64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	id, ok := h.links[chatID]
	return id, ok
}

func (h *Handler) link(chatID, userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.links[chatID] = userID
}

func (h *Handler) unlink(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.links, chatID)
	delete(h.pending, chatID)
}

func (h *Handler) setPending(chatID int64, term string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending[chatID] = term
}

// takePending returns and clears the word awaiting confirmation
func (h *Handler) takePending(chatID int64) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	term, ok := h.pending[chatID]
	delete(h.pending, chatID)
	return term, ok
}

// Inline keyboard buttons
var (
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 İstatistikler",
	}
	btnRecent = tele.Btn{
		Unique: "recent",
		Text:   "🕘 Son kelimeler",
	}
	btnAddAnyway = tele.Btn{
		Unique: "add_anyway",
		Text:   "➕ Yine de ekle",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ İptal",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Ana menü",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStats),
		menu.Row(btnRecent),
	)
	return menu
}

func userIDFrom(c tele.Context) int64 {
	id, _ := c.Get(middleware.UserIDKey).(int64)
	return id
}

// requestContext bounds the service calls of one update
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
