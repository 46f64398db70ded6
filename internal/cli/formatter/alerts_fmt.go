package formatter

import (
	"fmt"
	"strings"

	"github.com/evanmorales/dueline/internal/domain"
)

// RenderAlerts renders notifications most urgent first. Unread entries are
// marked with a bold dot; the composite key is shown dimmed so it can be fed
// back to 'alerts read' and 'alerts dismiss'.
func RenderAlerts(list []domain.DeadlineNotification) string {
	if len(list) == 0 {
		return Dim("No active alerts.") + "\n"
	}

	var b strings.Builder
	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
	}
	b.WriteString(Header(fmt.Sprintf("Alerts (%d unread)", unread)))
	b.WriteString("\n")

	for _, n := range list {
		marker := "  "
		if !n.IsRead {
			marker = StyleBold.Render("● ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, BucketIndicator(n.Bucket), StyleBold.Render(n.Title)))
		b.WriteString(fmt.Sprintf("    %s\n", n.Message))
		b.WriteString(fmt.Sprintf("    %s\n", Dim(fmt.Sprintf("due %s  key %s", HumanDate(n.Deadline), n.ID))))
	}
	return b.String()
}
