package scheduler

import (
	"fmt"
	"strings"
	"time"

	"deskhub/pkg/domain"
)

// formatNewsDigest renders unsent news as one text block, the dispatcher
// splits it into webhook-sized chunks at line boundaries
func formatNewsDigest(items []*domain.NewsItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📰 **News digest** — %d new item(s)\n", len(items))

	for _, item := range items {
		b.WriteString("\n")
		if item.FeedTitle != "" {
			fmt.Fprintf(&b, "**%s** · %s\n", item.Title, item.FeedTitle)
		} else {
			fmt.Fprintf(&b, "**%s**\n", item.Title)
		}
		if item.Summary != "" {
			b.WriteString(item.Summary)
			b.WriteString("\n")
		}
		if item.Link != "" {
			b.WriteString("<" + item.Link + ">\n")
		}
	}
	return b.String()
}

// formatTaskDigest renders due tasks grouped into overdue and due-today
// sections, most urgent first
func formatTaskDigest(tasks []*domain.Task, now time.Time, mention string) string {
	var overdue, today []*domain.Task
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, task := range tasks {
		if task.DueAt != nil && task.DueAt.Before(dayStart) {
			overdue = append(overdue, task)
			continue
		}
		today = append(today, task)
	}

	var b strings.Builder
	if mention != "" {
		fmt.Fprintf(&b, "<@%s>\n", mention)
	}
	b.WriteString("⏰ **Task reminders**\n")

	if len(overdue) > 0 {
		b.WriteString("\n**OVERDUE**\n")
		for _, task := range overdue {
			writeTaskLine(&b, task)
		}
	}
	if len(today) > 0 {
		b.WriteString("\n**DUE TODAY**\n")
		for _, task := range today {
			writeTaskLine(&b, task)
		}
	}
	return b.String()
}

func writeTaskLine(b *strings.Builder, task *domain.Task) {
	line := "- " + task.Title
	if task.Priority == domain.PriorityHigh {
		line = "- ❗ " + task.Title
	}
	if task.DueAt != nil {
		line += fmt.Sprintf(" (due %s)", task.DueAt.Format("Mon Jan 2"))
	}
	b.WriteString(line + "\n")
}
