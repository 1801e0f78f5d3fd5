package handler

import (
	"net/http"
	"strconv"
	"time"

	"wordbook/internal/domain"
	"wordbook/internal/middleware"

	"github.com/gin-gonic/gin"
)

type addWordRequest struct {
	English string `json:"english"`
}

type wordRequest struct {
	English         string     `json:"english"`
	Meaning         string     `json:"meaning"`
	TurkishMeaning  string     `json:"turkishMeaning"`
	ExampleUsage    string     `json:"exampleUsage"`
	DifficultyLevel string     `json:"difficultyLevel"`
	AddedDate       *time.Time `json:"addedDate"`
}

type wordDetailResponse struct {
	*domain.Word
	FullMeaning string `json:"fullMeaning,omitempty"`
}

func (h *Handler) addWord(c *gin.Context) {
	h.createWord(c, false)
}

func (h *Handler) forceAddWord(c *gin.Context) {
	h.createWord(c, true)
}

func (h *Handler) createWord(c *gin.Context, force bool) {
	auth, _ := middleware.AuthFrom(c)

	var req addWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.Validation("invalid request body"))
		return
	}

	add := h.wordService.AddNewWord
	if force {
		add = h.wordService.AddWord
	}

	word, err := add(c.Request.Context(), req.English, &auth.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, word)
}

func (h *Handler) listWords(c *gin.Context) {
	// logged-in users see their own words newest first
	_, loggedIn := middleware.AuthFrom(c)

	words, err := h.wordService.List(c.Request.Context(), sessionScope(c), loggedIn)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, words)
}

func (h *Handler) sortedWords(c *gin.Context) {
	words, err := h.wordService.List(c.Request.Context(), sessionScope(c), true)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, words)
}

func (h *Handler) searchWords(c *gin.Context) {
	var scope domain.Scope
	switch param := c.Query("userId"); {
	case param != "":
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			h.writeError(c, domain.Validation("invalid userId"))
			return
		}
		scope = domain.ForUser(id)
	default:
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusOK, []domain.Word{})
			return
		}
		scope = domain.ForUser(auth.UserID)
	}

	words, err := h.wordService.Search(c.Request.Context(), scope, c.Query("query"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, words)
}

func (h *Handler) filterWords(c *gin.Context) {
	words, err := h.wordService.Filter(c.Request.Context(), sessionScope(c), c.Query("difficulty"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, words)
}

func (h *Handler) statistics(c *gin.Context) {
	stats, err := h.statsService.Summary(c.Request.Context(), sessionScope(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) chartData(c *gin.Context) {
	chart, err := h.statsService.Chart(c.Request.Context(), sessionScope(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *Handler) getWord(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	word, err := h.wordService.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wordDetailResponse{
		Word:        word,
		FullMeaning: h.wordService.FullMeaning(c.Request.Context(), word),
	})
}

func (h *Handler) updateWord(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req wordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.Validation("invalid request body"))
		return
	}

	word, err := h.wordService.Update(c.Request.Context(), id, domain.WordUpdate{
		English:         req.English,
		Meaning:         req.Meaning,
		TurkishMeaning:  req.TurkishMeaning,
		ExampleUsage:    req.ExampleUsage,
		DifficultyLevel: req.DifficultyLevel,
		AddedDate:       req.AddedDate,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, word)
}

func (h *Handler) deleteWord(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.wordService.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
