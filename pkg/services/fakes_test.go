package services

import "context"

type fakeCompleter struct {
	calls      int
	lastSystem string
	lastUser   string
	reply      string
	err        error
}

func (f *fakeCompleter) CreateCompletion(_ context.Context, system, user string, _ float32, _ int) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeVisionCompleter struct {
	calls       int
	lastDataURL string
	reply       string
	err         error
}

func (f *fakeVisionCompleter) DescribeImage(_ context.Context, _, imageDataURL string, _ int) (string, error) {
	f.calls++
	f.lastDataURL = imageDataURL
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeGenerator struct {
	calls      int
	lastPrompt string
	data       []byte
	format     string
	err        error
}

func (f *fakeGenerator) GenerateImage(_ context.Context, prompt string) ([]byte, string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, "", f.err
	}
	return f.data, f.format, nil
}
