package domain

import "time"

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Phone          string    `json:"phone,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Phone          string
	TelegramChatID *int64
}
