package domain

type ItemStatus string

const (
	StatusUpcoming  ItemStatus = "upcoming"
	StatusOngoing   ItemStatus = "ongoing"
	StatusCompleted ItemStatus = "completed"
)

// ValidItemStatuses is the canonical set of accepted status strings.
var ValidItemStatuses = map[string]bool{
	"upcoming": true, "ongoing": true, "completed": true,
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank returns a sort rank (higher = more urgent).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

type Bucket string

const (
	BucketUrgent   Bucket = "urgent"
	BucketReminder Bucket = "reminder"
	BucketUpcoming Bucket = "upcoming"
)

// BucketRank returns a sort rank (higher = more urgent).
func BucketRank(b Bucket) int {
	switch b {
	case BucketUrgent:
		return 3
	case BucketReminder:
		return 2
	case BucketUpcoming:
		return 1
	default:
		return 0
	}
}

type ViewFilter string

const (
	ViewAll      ViewFilter = "all"
	ViewUpcoming ViewFilter = "upcoming"
	ViewOngoing  ViewFilter = "ongoing"
	ViewOverdue  ViewFilter = "overdue"
)

// ValidViewFilters is the canonical set of accepted view strings.
var ValidViewFilters = map[string]bool{
	"all": true, "upcoming": true, "ongoing": true, "overdue": true,
}

type SortKey string

const (
	SortByDeadline SortKey = "deadline"
	SortByPriority SortKey = "priority"
	SortByPayment  SortKey = "payment"
	SortByStatus   SortKey = "status"
)

// ValidSortKeys is the canonical set of accepted sort key strings.
var ValidSortKeys = map[string]bool{
	"deadline": true, "priority": true, "payment": true, "status": true,
}
