package repositoryImp

import (
	"gorm.io/gorm"

	"collegefaq/entities"
	"collegefaq/pkg/chat/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MessageRepository { return &repo{db: db} }

func (r *repo) Create(msgs []entities.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	return r.db.Create(&msgs).Error
}

func (r *repo) ListByUser(userID uint) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	return out, r.db.
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&out).Error
}
