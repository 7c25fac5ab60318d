package serviceImp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"collegefaq/entities"
	"collegefaq/pkg/ai"
	"collegefaq/pkg/chat/prompt"
	"collegefaq/pkg/chat/repository"
	"collegefaq/pkg/chat/service"
	"collegefaq/pkg/kb/index"
)

// Retriever is the question → top-k chunks stage.
type Retriever interface {
	Retrieve(ctx context.Context, question string, k int) ([]index.Hit, error)
}

// Svc drives the pipeline per request: validate, retrieve, assemble,
// generate, then best-effort history persistence. No step retries, no
// caching, no partial results.
type Svc struct {
	retr Retriever
	llm  ai.Client
	repo repository.MessageRepository
	topK int
}

func New(retr Retriever, llm ai.Client, repo repository.MessageRepository, topK int) *Svc {
	if topK < 1 {
		topK = 3
	}
	return &Svc{retr: retr, llm: llm, repo: repo, topK: topK}
}

func (s *Svc) Answer(ctx context.Context, question string, userID uint) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", service.ErrEmptyQuestion
	}

	hits, err := s.retr.Retrieve(ctx, q, s.topK)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	chunks := make([]string, len(hits))
	for i, h := range hits {
		chunks[i] = h.Text
	}

	answer, err := s.llm.Complete(ctx, prompt.Assemble(chunks, q))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	// The answer is already produced; a failed history write must not turn
	// it into a failed request.
	if userID != 0 {
		err := s.repo.Create([]entities.ChatMessage{
			{UserID: userID, Role: entities.RoleUser, Message: q},
			{UserID: userID, Role: entities.RoleAssistant, Message: answer},
		})
		if err != nil {
			log.Printf("[chat] history write failed for user %d: %v", userID, err)
		}
	}

	return answer, nil
}

func (s *Svc) History(userID uint) ([]entities.ChatMessage, error) {
	return s.repo.ListByUser(userID)
}
