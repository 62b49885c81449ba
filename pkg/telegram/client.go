package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

type client struct {
	token     string
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		token:     token,
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendTextMessage delivers a text message. HTML markup rejected by the
// transport is retried once as plain text; an error is returned only
// when even the plain retry fails.
func (c *client) SendTextMessage(ctx context.Context, message domain.TextMessage) error {
	msg := tgbotapi.NewMessage(message.ChatID, message.Text)
	msg.ReplyToMessageID = message.ReplyToMessageID
	if message.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if message.Keyboard != nil {
		msg.ReplyMarkup = toInlineKeyboard(message.Keyboard)
	}

	if _, err := c.bot.Send(msg); err != nil {
		if !message.HTML {
			return fmt.Errorf("sending message: %w", err)
		}

		slog.WarnContext(ctx, "markup rejected by transport, retrying as plain text", logger.Err(err))

		msg.ParseMode = ""
		if _, retryErr := c.bot.Send(msg); retryErr != nil {
			return fmt.Errorf("sending message: %w", errors.Join(err, retryErr))
		}
	}
	return nil
}

func (c *client) SendImageMessage(ctx context.Context, message domain.ImageMessage) error {
	msg := tgbotapi.NewPhoto(message.ChatID, tgbotapi.FileBytes{
		Name:  "image",
		Bytes: message.Bytes,
	})
	msg.ReplyToMessageID = message.ReplyToMessageID
	msg.Caption = message.Caption

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("sending image: %w", err)
	}
	return nil
}

func (c *client) SendDocumentMessage(ctx context.Context, message domain.DocumentMessage) error {
	msg := tgbotapi.NewDocument(message.ChatID, tgbotapi.FileBytes{
		Name:  message.Name,
		Bytes: message.Bytes,
	})

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("sending document: %w", err)
	}
	return nil
}

// EditTextMessage replaces the content of a previously sent message in
// place, with the same plain-text retry as SendTextMessage.
func (c *client) EditTextMessage(ctx context.Context, message domain.EditMessage) error {
	msg := tgbotapi.NewEditMessageText(message.ChatID, message.MessageID, message.Text)
	if message.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if message.Keyboard != nil {
		markup := toInlineKeyboard(message.Keyboard)
		msg.ReplyMarkup = &markup
	}

	if _, err := c.bot.Send(msg); err != nil {
		if !message.HTML {
			return fmt.Errorf("editing message: %w", err)
		}

		slog.WarnContext(ctx, "markup rejected on edit, retrying as plain text", logger.Err(err))

		msg.ParseMode = ""
		if _, retryErr := c.bot.Send(msg); retryErr != nil {
			return fmt.Errorf("editing message: %w", errors.Join(err, retryErr))
		}
	}
	return nil
}

// AcknowledgeCallback stops the loading spinner on an inline keyboard
// button, regardless of how the action itself went.
func (c *client) AcknowledgeCallback(ctx context.Context, msg domain.CallbackMessage) {
	if _, err := c.bot.Request(tgbotapi.NewCallback(msg.CallbackQueryID, "")); err != nil {
		slog.ErrorContext(ctx, "acknowledging callback", logger.Err(err))
	}
}

func (c *client) SendTyping(ctx context.Context, chatID int64) {
	if _, err := c.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		slog.ErrorContext(ctx, "sending typing action", logger.Err(err))
	}
}

// DownloadFile fetches a Telegram-hosted file, such as an inbound
// photo, into memory.
func (c *client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(c.token), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.bot.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.ErrorContext(ctx, "closing body", logger.Err(closeErr))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return data, nil
}

func toInlineKeyboard(keyboard *domain.Keyboard) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(keyboard.Buttons))
	for _, b := range keyboard.Buttons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}
