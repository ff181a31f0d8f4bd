package handler

import (
	"sync"

	"lexibook/internal/domain"
	"lexibook/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions. It is a pure consumer of the
// application services: every effect goes through their public operations.
type Handler struct {
	bot       *tele.Bot
	auth      *service.AuthService
	bookmarks *service.BookmarkService
	search    *service.SearchService
	loader    *service.LoadingSignal
	logger    *zap.Logger

	// Conversation states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Most recent chat, used to surface the loading indicator
	chatMux     sync.Mutex
	currentChat tele.Recipient
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	auth *service.AuthService,
	bookmarks *service.BookmarkService,
	search *service.SearchService,
	loader *service.LoadingSignal,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:       bot,
		auth:      auth,
		bookmarks: bookmarks,
		search:    search,
		loader:    loader,
		logger:    logger,
		states:    make(map[int64]*domain.StateData),
	}

	// Show a typing indicator while a search is in flight
	loader.OnChange(func(active bool) {
		if !active {
			return
		}
		h.chatMux.Lock()
		chat := h.currentChat
		h.chatMux.Unlock()
		if chat == nil {
			return
		}
		if err := bot.Notify(chat, tele.Typing); err != nil {
			logger.Debug("Failed to send typing action", zap.Error(err))
		}
	})

	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnSearch, h.handleSearchButton)
	h.bot.Handle(&btnSynonyms, h.handleSynonymsButton)
	h.bot.Handle(&btnBookmarks, h.handleBookmarks)
	h.bot.Handle(&btnLogin, h.handleLoginButton)
	h.bot.Handle(&btnRegister, h.handleRegisterButton)
	h.bot.Handle(&btnLogout, h.handleLogout)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnSave, h.handleSaveCallback)
	h.bot.Handle(&btnDel, h.handleDeleteCallback)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

func (h *Handler) rememberChat(c tele.Context) {
	h.chatMux.Lock()
	h.currentChat = c.Chat()
	h.chatMux.Unlock()
}

// Inline keyboard buttons
var (
	btnSearch = tele.Btn{
		Unique: "search",
		Text:   "🔍 Search word",
	}
	btnSynonyms = tele.Btn{
		Unique: "synonyms",
		Text:   "🔗 Find synonyms",
	}
	btnBookmarks = tele.Btn{
		Unique: "bookmarks",
		Text:   "🔖 Bookmarks",
	}
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "🔑 Log in",
	}
	btnRegister = tele.Btn{
		Unique: "register",
		Text:   "📝 Register",
	}
	btnLogout = tele.Btn{
		Unique: "logout",
		Text:   "🚪 Log out",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup builds the menu for the current session state
func (h *Handler) mainMenuMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	rows := []tele.Row{
		markup.Row(btnSearch, btnSynonyms),
	}
	if _, ok := h.auth.CurrentUser(); ok {
		rows = append(rows,
			markup.Row(btnBookmarks),
			markup.Row(btnLogout),
		)
	} else {
		rows = append(rows, markup.Row(btnLogin, btnRegister))
	}

	markup.Inline(rows...)
	return markup
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
