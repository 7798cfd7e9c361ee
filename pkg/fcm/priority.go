package fcm

// Priority is the delivery priority of a message.
type Priority string

const (
	// PriorityHigh delivers immediately and may wake a sleeping device.
	// On iOS it maps to APNs priority 10.
	PriorityHigh Priority = "high"
	// PriorityNormal is the FCM default. On iOS it maps to APNs priority 5.
	PriorityNormal Priority = "normal"
)

var priorities = [...]Priority{PriorityHigh, PriorityNormal}

// Priorities returns every priority accepted by FCM.
// The returned slice is a copy and may be modified by the caller.
func Priorities() []Priority {
	out := make([]Priority, len(priorities))
	copy(out, priorities[:])
	return out
}

// IsValidPriority reports whether candidate is a supported priority.
// The match is exact and case-sensitive.
func IsValidPriority(candidate string) bool {
	return Priority(candidate).IsValid()
}

func (p Priority) IsValid() bool {
	for _, known := range priorities {
		if p == known {
			return true
		}
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}
