package notify

import (
	"fmt"
	"strings"

	"bloomfundr-api/internal/utils/timeutil"
)

// NotifyPayoutAlert raises an ops alert for a payout run, e.g. ledger
// write failures during closeout.
func NotifyPayoutAlert(chatID, level, title string, campaignID uint64, detail map[string]string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n", escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("*level:* %s\n", escapeMarkdown(level)))
	sb.WriteString(fmt.Sprintf("*campaign:* %d\n", campaignID))
	sb.WriteString(fmt.Sprintf("*time:* %s\n", timeutil.FormatISO8601(timeutil.NowUTC())))

	for k, v := range detail {
		if v != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", escapeMarkdown(k), escapeMarkdown(v)))
		}
	}

	NotifySendMsgToTG(chatID, sb.String())
}

// escapeMarkdown escapes Telegram MarkdownV2 special characters.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)
	return replacer.Replace(s)
}
