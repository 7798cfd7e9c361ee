package fcm

import (
	"fmt"
	"strings"

	"github.com/douglasroos/fcm/pkg/validator"
)

// MaxTimeToLive is the longest time, in seconds, FCM keeps an undelivered
// message (28 days).
const MaxTimeToLive = 2419200

// optional holds a value together with whether it was ever set.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

// fields is shared by OptionsBuilder and Options. It contains no pointers,
// so assigning it copies every value.
type fields struct {
	collapseKey           optional[string]
	priority              optional[Priority]
	contentAvailable      bool
	delayWhileIdle        bool
	timeToLive            optional[int]
	restrictedPackageName optional[string]
	dryRun                bool
}

// OptionsBuilder accumulates message options and produces immutable Options.
// It is not safe for concurrent use.
type OptionsBuilder struct {
	f fields
}

// NewOptionsBuilder returns a builder with every option unset.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{}
}

// SetCollapseKey identifies a group of messages that can be collapsed, so
// only the last one is delivered when delivery resumes.
func (b *OptionsBuilder) SetCollapseKey(key string) *OptionsBuilder {
	b.f.collapseKey = some(key)
	return b
}

// SetPriority sets the message priority.
// Returns ErrInvalidOption for values outside Priorities.
func (b *OptionsBuilder) SetPriority(p Priority) (*OptionsBuilder, error) {
	if err := validator.Apply(validator.OneOf("priority", p, priorities[:])); err != nil {
		return b, newInvalidOptionError("priority", p,
			fmt.Sprintf("priority %q is not valid, use one of the fcm.Priority constants (%s)", p, priorityList()),
			err)
	}
	b.f.priority = some(p)
	return b, nil
}

// SetContentAvailable wakes an inactive client app. On iOS it becomes
// content-available in the APNs payload.
func (b *OptionsBuilder) SetContentAvailable(v bool) *OptionsBuilder {
	b.f.contentAvailable = v
	return b
}

// SetDelayWhileIdle holds the message until the device becomes active.
func (b *OptionsBuilder) SetDelayWhileIdle(v bool) *OptionsBuilder {
	b.f.delayWhileIdle = v
	return b
}

// SetTimeToLive sets how long, in seconds, FCM keeps the message while the
// device is offline. Returns ErrInvalidOption outside [0, MaxTimeToLive].
func (b *OptionsBuilder) SetTimeToLive(seconds int) (*OptionsBuilder, error) {
	if err := validator.Apply(validator.Between("time_to_live", seconds, 0, MaxTimeToLive)); err != nil {
		return b, newInvalidOptionError("time_to_live", seconds,
			fmt.Sprintf("time to live must be between 0 and %d", MaxTimeToLive),
			err)
	}
	b.f.timeToLive = some(seconds)
	return b, nil
}

// SetRestrictedPackageName limits delivery to registration tokens of the
// given application package.
func (b *OptionsBuilder) SetRestrictedPackageName(name string) *OptionsBuilder {
	b.f.restrictedPackageName = some(name)
	return b
}

// SetDryRun asks FCM to validate the request without delivering it.
func (b *OptionsBuilder) SetDryRun(v bool) *OptionsBuilder {
	b.f.dryRun = v
	return b
}

func (b *OptionsBuilder) CollapseKey() (string, bool)           { return b.f.collapseKey.get() }
func (b *OptionsBuilder) Priority() (Priority, bool)            { return b.f.priority.get() }
func (b *OptionsBuilder) IsContentAvailable() bool              { return b.f.contentAvailable }
func (b *OptionsBuilder) IsDelayWhileIdle() bool                { return b.f.delayWhileIdle }
func (b *OptionsBuilder) TimeToLive() (int, bool)               { return b.f.timeToLive.get() }
func (b *OptionsBuilder) RestrictedPackageName() (string, bool) { return b.f.restrictedPackageName.get() }
func (b *OptionsBuilder) IsDryRun() bool                        { return b.f.dryRun }

// Build returns a snapshot of the current options. Later changes to the
// builder do not affect it.
func (b *OptionsBuilder) Build() Options {
	return Options{f: b.f}
}

func priorityList() string {
	names := make([]string, len(priorities))
	for i, p := range priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
