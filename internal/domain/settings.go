package domain

import "fmt"

// NotificationSettings is the user-tunable alerting policy. Thresholds are
// day counts; an item within a threshold of its deadline lands in the
// corresponding bucket.
type NotificationSettings struct {
	UrgentThresholdDays   int
	ReminderThresholdDays int
	UpcomingThresholdDays int
}

// DefaultNotificationSettings returns the stock 1/3/7 day policy.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		UrgentThresholdDays:   1,
		ReminderThresholdDays: 3,
		UpcomingThresholdDays: 7,
	}
}

// Validate enforces 0 <= urgent < reminder < upcoming. A violating policy
// would misclassify items, so it is rejected rather than clamped.
func (s NotificationSettings) Validate() error {
	if s.UrgentThresholdDays < 0 {
		return fmt.Errorf("%w: urgent threshold %d is negative", ErrInvalidSettings, s.UrgentThresholdDays)
	}
	if s.UrgentThresholdDays >= s.ReminderThresholdDays {
		return fmt.Errorf("%w: urgent %d must be below reminder %d", ErrInvalidSettings, s.UrgentThresholdDays, s.ReminderThresholdDays)
	}
	if s.ReminderThresholdDays >= s.UpcomingThresholdDays {
		return fmt.Errorf("%w: reminder %d must be below upcoming %d", ErrInvalidSettings, s.ReminderThresholdDays, s.UpcomingThresholdDays)
	}
	return nil
}
