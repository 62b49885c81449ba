package handler

import (
	"context"
	"log/slog"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/render"
)

// formatForDelivery turns raw model output into Telegram HTML via the
// LLM formatter, degrading to a local markdown render and finally to
// the untouched text. The returned flag reports whether the text is
// HTML markup.
func formatForDelivery(ctx context.Context, formatter FormatterService, text string) (string, bool) {
	formatted, fail := formatter.Format(ctx, text)
	if fail == nil {
		return formatted, true
	}

	slog.WarnContext(ctx, "formatter unavailable, rendering markdown locally", "kind", fail.Kind, "err", fail.Err)

	if html := render.ToHTML(text); html != "" {
		return html, true
	}
	return text, false
}
