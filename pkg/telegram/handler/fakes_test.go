package handler

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type fakeClient struct {
	texts  []domain.TextMessage
	images []domain.ImageMessage
	docs   []domain.DocumentMessage
	edits  []domain.EditMessage

	fileData []byte

	sendErr     error
	imageErr    error
	docErr      error
	editErr     error
	downloadErr error
}

func (f *fakeClient) SendTextMessage(_ context.Context, m domain.TextMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.texts = append(f.texts, m)
	return nil
}

func (f *fakeClient) SendImageMessage(_ context.Context, m domain.ImageMessage) error {
	if f.imageErr != nil {
		return f.imageErr
	}
	f.images = append(f.images, m)
	return nil
}

func (f *fakeClient) SendDocumentMessage(_ context.Context, m domain.DocumentMessage) error {
	if f.docErr != nil {
		return f.docErr
	}
	f.docs = append(f.docs, m)
	return nil
}

func (f *fakeClient) EditTextMessage(_ context.Context, m domain.EditMessage) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.edits = append(f.edits, m)
	return nil
}

func (f *fakeClient) DownloadFile(_ context.Context, _ string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.fileData, nil
}

type fakeClassifier struct {
	intent domain.Intent
	fail   *domain.Failure
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (domain.Intent, *domain.Failure) {
	f.calls++
	return f.intent, f.fail
}

type fakeAnswerService struct {
	reply     string
	fail      *domain.Failure
	calls     int
	lastQuery string
}

func (f *fakeAnswerService) Answer(_ context.Context, query string) (string, *domain.Failure) {
	f.calls++
	f.lastQuery = query
	return f.reply, f.fail
}

type fakeImageService struct {
	data       []byte
	fail       *domain.Failure
	calls      int
	lastPrompt string
}

func (f *fakeImageService) Generate(_ context.Context, prompt string) ([]byte, *domain.Failure) {
	f.calls++
	f.lastPrompt = prompt
	return f.data, f.fail
}

type fakeVisionService struct {
	reply     string
	fail      *domain.Failure
	calls     int
	lastImage []byte
}

func (f *fakeVisionService) Describe(_ context.Context, image []byte) (string, *domain.Failure) {
	f.calls++
	f.lastImage = image
	return f.reply, f.fail
}

type fakeFormatterService struct {
	reply string
	fail  *domain.Failure
	calls int
}

func (f *fakeFormatterService) Format(_ context.Context, _ string) (string, *domain.Failure) {
	f.calls++
	return f.reply, f.fail
}

type storageKey struct {
	messageID int
	chatID    int64
}

type fakeStorage struct {
	saved   []domain.QueryRecord
	queries map[storageKey]string
	saveErr error
	getErr  error
}

func (f *fakeStorage) Save(_ context.Context, rec *domain.QueryRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *rec)
	return nil
}

func (f *fakeStorage) GetQuery(_ context.Context, messageID int, chatID int64) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	query, ok := f.queries[storageKey{messageID, chatID}]
	if !ok {
		return "", domain.ErrNotFound
	}
	return query, nil
}

func textUpdate(chatID int64, messageID int, userID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: messageID,
			Chat:      &tgbotapi.Chat{ID: chatID},
			From:      &tgbotapi.User{ID: userID, FirstName: "Тест"},
			Text:      text,
		},
	}
}

func photoUpdate(chatID int64, messageID int, userID int64, fileID string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: messageID,
			Chat:      &tgbotapi.Chat{ID: chatID},
			From:      &tgbotapi.User{ID: userID},
			Photo:     []tgbotapi.PhotoSize{{FileID: fileID}},
		},
	}
}

func callbackUpdate(chatID int64, answerMessageID int, userID int64, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb1",
			Data: data,
			From: &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{
				MessageID: answerMessageID,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
		},
	}
}
