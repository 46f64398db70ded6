package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
)

// GenerateNotifications produces at most one notification per work item,
// assigned to the most urgent applicable bucket. Completed items are always
// silent. Read and dismissed flags are carried over from prev by composite
// key; an item that escalated to a more urgent bucket gets a new key and so
// comes back as a fresh unread alert.
func GenerateNotifications(
	items []TimelineItem,
	settings domain.NotificationSettings,
	now time.Time,
	prev []domain.DeadlineNotification,
) []domain.DeadlineNotification {
	carry := make(map[string]domain.DeadlineNotification, len(prev))
	for _, n := range prev {
		carry[n.ID] = n
	}

	out := make([]domain.DeadlineNotification, 0, len(items))
	for _, it := range items {
		if it.Status == domain.StatusCompleted {
			continue
		}
		n, ok := buildNotification(it, settings, now)
		if !ok {
			continue
		}
		if old, found := carry[n.ID]; found {
			n.IsRead = old.IsRead
			n.IsDismissed = old.IsDismissed
			n.CreatedAt = old.CreatedAt
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := domain.BucketRank(out[i].Bucket), domain.BucketRank(out[j].Bucket)
		if ri != rj {
			return ri > rj
		}
		if !out[i].Deadline.Equal(out[j].Deadline) {
			return out[i].Deadline.Before(out[j].Deadline)
		}
		return out[i].WorkItemID < out[j].WorkItemID
	})
	return out
}

// buildNotification walks the bucket ladder most-urgent-first; the first
// matching rule wins.
func buildNotification(it TimelineItem, settings domain.NotificationSettings, now time.Time) (domain.DeadlineNotification, bool) {
	days := it.DaysUntilDeadline

	var bucket domain.Bucket
	var title, message string
	switch {
	case days <= 0:
		bucket = domain.BucketUrgent
		title = "Overdue Project!"
		switch overdueBy := -days; overdueBy {
		case 0:
			message = fmt.Sprintf("%q is due today", it.Title)
		case 1:
			message = fmt.Sprintf("%q is 1 day overdue", it.Title)
		default:
			message = fmt.Sprintf("%q is %d days overdue", it.Title, overdueBy)
		}
	case days <= settings.UrgentThresholdDays:
		bucket = domain.BucketUrgent
		title = "Urgent Deadline"
		if days == 1 {
			message = fmt.Sprintf("%q is due tomorrow", it.Title)
		} else {
			message = fmt.Sprintf("%q is due in %d days", it.Title, days)
		}
	case days <= settings.ReminderThresholdDays:
		bucket = domain.BucketReminder
		title = "Deadline Reminder"
		message = fmt.Sprintf("%q is due in %d days", it.Title, days)
	case days <= settings.UpcomingThresholdDays:
		bucket = domain.BucketUpcoming
		title = "Upcoming Deadline"
		message = fmt.Sprintf("%q is due in %d days", it.Title, days)
	default:
		return domain.DeadlineNotification{}, false
	}

	return domain.DeadlineNotification{
		ID:         domain.NotificationKey(bucket, it.ID),
		WorkItemID: it.ID,
		Bucket:     bucket,
		Title:      title,
		Message:    message,
		Deadline:   it.DeadlineAt,
		CreatedAt:  now,
	}, true
}

// Visible filters out dismissed notifications for display. Dismissed
// entries still exist in the generated list so their state survives the
// next regeneration.
func Visible(list []domain.DeadlineNotification) []domain.DeadlineNotification {
	out := make([]domain.DeadlineNotification, 0, len(list))
	for _, n := range list {
		if !n.IsDismissed {
			out = append(out, n)
		}
	}
	return out
}
