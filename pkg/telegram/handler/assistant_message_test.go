package handler

import (
	"context"
	"strings"
	"testing"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

func TestAssistantMessageCanHandle(t *testing.T) {
	h := NewAssistantMessage(nil, nil, nil, nil, nil, nil)

	if !h.CanHandle(textUpdate(1, 7, 9, "What is 2+2?")) {
		t.Error("plain text must be handled")
	}
	if h.CanHandle(textUpdate(1, 7, 9, "/start")) {
		t.Error("commands must not be handled")
	}
	if h.CanHandle(photoUpdate(1, 7, 9, "file-id")) {
		t.Error("photo updates belong to the vision handler")
	}
}

func TestQuestionFlowDeliversAndPersists(t *testing.T) {
	classifier := &fakeClassifier{intent: domain.IntentQuestion}
	answers := &fakeAnswerService{reply: "4"}
	images := &fakeImageService{}
	formatter := &fakeFormatterService{reply: "<b>4</b>"}
	storage := &fakeStorage{}
	client := &fakeClient{}

	h := NewAssistantMessage(classifier, answers, images, formatter, storage, client)
	h.Handle(context.Background(), textUpdate(1, 42, 9, "What is 2+2?"))

	if len(client.texts) != 1 {
		t.Fatalf("got %d messages, want 1", len(client.texts))
	}
	msg := client.texts[0]
	if msg.Text != "<b>4</b>" || !msg.HTML {
		t.Errorf("unexpected delivery: %+v", msg)
	}
	if msg.Keyboard == nil || len(msg.Keyboard.Buttons) != 2 {
		t.Fatalf("keyboard missing: %+v", msg.Keyboard)
	}
	if msg.Keyboard.Buttons[0].Data != "regenerate:42" || msg.Keyboard.Buttons[1].Data != "explain:42" {
		t.Errorf("correlation keys wrong: %+v", msg.Keyboard.Buttons)
	}

	if len(storage.saved) != 1 {
		t.Fatalf("got %d records, want 1", len(storage.saved))
	}
	rec := storage.saved[0]
	if rec.UserID != 9 || rec.ChatID != 1 || rec.MessageID != 42 || rec.Text != "What is 2+2?" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Timestamp == "" {
		t.Error("timestamp not set")
	}
}

func TestClassifierFailureInvokesNoAdapter(t *testing.T) {
	classifier := &fakeClassifier{fail: domain.MismatchFailure("Не понял, что ты хочешь.")}
	answers := &fakeAnswerService{}
	images := &fakeImageService{}
	storage := &fakeStorage{}
	client := &fakeClient{}

	h := NewAssistantMessage(classifier, answers, images, &fakeFormatterService{}, storage, client)
	h.Handle(context.Background(), textUpdate(1, 42, 9, "????"))

	if answers.calls != 0 || images.calls != 0 {
		t.Errorf("adapters invoked after classification failure: answers=%d images=%d", answers.calls, images.calls)
	}
	if len(client.texts) != 1 || client.texts[0].Text != "Не понял, что ты хочешь." {
		t.Errorf("failure message not delivered: %+v", client.texts)
	}
	if len(storage.saved) != 0 {
		t.Error("nothing must be persisted")
	}
}

func TestAnswerFailureDeliveredPlainWithoutFormatting(t *testing.T) {
	classifier := &fakeClassifier{intent: domain.IntentQuestion}
	answers := &fakeAnswerService{fail: domain.BackendFailure("Что-то пошло не так с вопросом.", nil)}
	formatter := &fakeFormatterService{}
	storage := &fakeStorage{}
	client := &fakeClient{}

	h := NewAssistantMessage(classifier, answers, &fakeImageService{}, formatter, storage, client)
	h.Handle(context.Background(), textUpdate(1, 42, 9, "question"))

	if formatter.calls != 0 {
		t.Error("failure payloads must not be formatted")
	}
	if len(client.texts) != 1 {
		t.Fatalf("got %d messages, want 1", len(client.texts))
	}
	if client.texts[0].HTML {
		t.Error("failure message must be plain")
	}
	if len(storage.saved) != 0 {
		t.Error("failed answers must not be persisted")
	}
}

func TestDeliveryFailureSkipsPersistence(t *testing.T) {
	classifier := &fakeClassifier{intent: domain.IntentQuestion}
	answers := &fakeAnswerService{reply: "4"}
	storage := &fakeStorage{}
	client := &fakeClient{sendErr: context.DeadlineExceeded}

	h := NewAssistantMessage(classifier, answers, &fakeImageService{}, &fakeFormatterService{reply: "<b>4</b>"}, storage, client)
	h.Handle(context.Background(), textUpdate(1, 42, 9, "question"))

	if len(storage.saved) != 0 {
		t.Error("record persisted despite delivery failure")
	}
}

func TestImageFlowSendsPhotoWithOriginalPromptCaption(t *testing.T) {
	classifier := &fakeClassifier{intent: domain.IntentImage}
	images := &fakeImageService{data: []byte{0xFF, 0xD8}}
	formatter := &fakeFormatterService{}
	storage := &fakeStorage{}
	client := &fakeClient{}

	h := NewAssistantMessage(classifier, &fakeAnswerService{}, images, formatter, storage, client)
	h.Handle(context.Background(), textUpdate(1, 42, 9, "нарисуй кота"))

	if len(client.images) != 1 {
		t.Fatalf("got %d photos, want 1", len(client.images))
	}
	if client.images[0].Caption != "нарисуй кота" {
		t.Errorf("caption %q, want the original prompt", client.images[0].Caption)
	}
	if formatter.calls != 0 {
		t.Error("image path must not format")
	}
	if len(storage.saved) != 0 {
		t.Error("image path must not persist")
	}
}

func TestImageDescriptionIntentSendsStaticReply(t *testing.T) {
	classifier := &fakeClassifier{intent: domain.IntentImageDescription}
	answers := &fakeAnswerService{}
	images := &fakeImageService{}
	client := &fakeClient{}

	h := NewAssistantMessage(classifier, answers, images, &fakeFormatterService{fail: domain.BackendFailure("down", nil)}, &fakeStorage{}, client)
	h.Handle(context.Background(), textUpdate(1, 42, 9, "что на картинке?"))

	if answers.calls != 0 || images.calls != 0 {
		t.Error("no adapter may run for image_description")
	}
	if len(client.texts) != 1 || !strings.Contains(client.texts[0].Text, "Пришли картинку") {
		t.Errorf("static prompt-for-image reply not delivered: %+v", client.texts)
	}
}
