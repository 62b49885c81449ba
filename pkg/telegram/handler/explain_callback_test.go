package handler

import (
	"context"
	"strings"
	"testing"
)

func TestExplainSendsNewMessageWithDirective(t *testing.T) {
	answers := &fakeAnswerService{reply: "a detailed explanation"}
	storage := &fakeStorage{queries: map[storageKey]string{{42, 1}: "What is 2+2?"}}
	client := &fakeClient{}

	h := NewExplainCallback(answers, &fakeFormatterService{reply: "<i>a detailed explanation</i>"}, storage, client)
	h.Handle(context.Background(), callbackUpdate(1, 55, 9, "explain:42"))

	if !strings.Contains(answers.lastQuery, "What is 2+2?") {
		t.Errorf("query %q must contain the stored text", answers.lastQuery)
	}
	if answers.lastQuery == "What is 2+2?" {
		t.Error("query must carry an explanation directive on top of the stored text")
	}

	if len(client.edits) != 0 {
		t.Error("explain must not edit the original answer")
	}
	if len(client.texts) != 1 || client.texts[0].Text != "<i>a detailed explanation</i>" {
		t.Errorf("new message missing: %+v", client.texts)
	}
}

func TestExplainMissingRecordIsTerminal(t *testing.T) {
	answers := &fakeAnswerService{}
	storage := &fakeStorage{queries: map[storageKey]string{}}
	client := &fakeClient{}

	h := NewExplainCallback(answers, &fakeFormatterService{}, storage, client)
	h.Handle(context.Background(), callbackUpdate(1, 55, 9, "explain:42"))

	if answers.calls != 0 {
		t.Error("adapter must not run when the record is missing")
	}
	if len(client.texts) != 1 || client.texts[0].Text != queryNotFoundText {
		t.Errorf("not-found notice missing: %+v", client.texts)
	}
}
