package domain

import (
	"fmt"
	"time"
)

// DeadlineNotification is a derived alert for one work item. Regenerated on
// every pass; only the read/dismissed flags survive regeneration, matched by
// the composite key.
type DeadlineNotification struct {
	// ID is the composite key "{bucket}-{workItemID}". At most one
	// notification exists per bucket per item, and an item occupies only
	// its most urgent applicable bucket.
	ID          string
	WorkItemID  string
	Bucket      Bucket
	Title       string
	Message     string
	Deadline    time.Time
	CreatedAt   time.Time
	IsRead      bool
	IsDismissed bool
}

// NotificationKey builds the composite key for a bucket/item pair.
func NotificationKey(b Bucket, workItemID string) string {
	return fmt.Sprintf("%s-%s", b, workItemID)
}
