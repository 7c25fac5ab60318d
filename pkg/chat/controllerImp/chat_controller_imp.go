package controllerImp

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"collegefaq/pkg/chat/controller"
	"collegefaq/pkg/chat/service"
	"collegefaq/pkg/middleware"
)

type chatCtrl struct{ s service.ChatService }

func New(s service.ChatService) controller.ChatController { return &chatCtrl{s: s} }

type chatReq struct {
	Question string `json:"question"`
}

func (h *chatCtrl) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}

	answer, err := h.s.Answer(c.Request().Context(), req.Question, middleware.UserID(c))
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Question is empty"})
	case err != nil:
		// full cause stays server-side; transport errors can embed API keys
		log.Printf("[chat] answer failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to answer question"})
	}
	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}

func (h *chatCtrl) History(c echo.Context) error {
	msgs, err := h.s.History(middleware.UserID(c))
	if err != nil {
		log.Printf("[chat] history read failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load history"})
	}
	return c.JSON(http.StatusOK, msgs)
}
