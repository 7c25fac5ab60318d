package repository

import "collegefaq/entities"

type MessageRepository interface {
	Create(msgs []entities.ChatMessage) error
	ListByUser(userID uint) ([]entities.ChatMessage, error)
}
