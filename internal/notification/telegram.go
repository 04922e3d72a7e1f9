package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Space reserved*\n\n"+"Reservation: %s\n"+"Window (UTC): %s to %s\n"+"Plate: %s",
		r.ReservationNo,
		r.StartTime.Format("02.01.2006 15:04"),
		r.EndTime.Format("02.01.2006 15:04"),
		r.PlateNumber,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, user *domain.User, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Reservation: %s\n"+"Window (UTC): %s to %s",
		r.ReservationNo,
		r.StartTime.Format("02.01.2006 15:04"),
		r.EndTime.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, user *domain.User, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Payment received*\n\n"+"Reservation: %s\n"+"Thank you for parking with us.",
		r.ReservationNo,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
