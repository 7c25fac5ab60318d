package service

import (
	"context"
	"errors"

	"collegefaq/entities"
)

// ErrEmptyQuestion marks a client-caused validation failure, as opposed to a
// pipeline failure.
var ErrEmptyQuestion = errors.New("question is empty")

// ChatService is the request-level coordinator of the answer pipeline.
// userID 0 means the caller is anonymous and no history is persisted.
type ChatService interface {
	Answer(ctx context.Context, question string, userID uint) (string, error)
	History(userID uint) ([]entities.ChatMessage, error)
}
