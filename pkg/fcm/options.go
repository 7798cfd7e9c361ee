package fcm

import (
	"encoding/json"
	"log/slog"
)

// Keys used for the options in an FCM HTTP request body.
const (
	KeyCollapseKey           = "collapse_key"
	KeyPriority              = "priority"
	KeyContentAvailable      = "content_available"
	KeyDelayWhileIdle        = "delay_while_idle"
	KeyTimeToLive            = "time_to_live"
	KeyRestrictedPackageName = "restricted_package_name"
	KeyDryRun                = "dry_run"
)

// Options is an immutable set of message options created by OptionsBuilder.Build.
// The zero value has every option unset. Options is safe for concurrent reads.
type Options struct {
	f fields
}

func (o Options) CollapseKey() (string, bool)           { return o.f.collapseKey.get() }
func (o Options) Priority() (Priority, bool)            { return o.f.priority.get() }
func (o Options) IsContentAvailable() bool              { return o.f.contentAvailable }
func (o Options) IsDelayWhileIdle() bool                { return o.f.delayWhileIdle }
func (o Options) TimeToLive() (int, bool)               { return o.f.timeToLive.get() }
func (o Options) RestrictedPackageName() (string, bool) { return o.f.restrictedPackageName.get() }
func (o Options) IsDryRun() bool                        { return o.f.dryRun }

// Fields returns the options as FCM request body fields.
// Unset options and false flags are omitted. A time to live of 0 is kept.
func (o Options) Fields() map[string]any {
	out := make(map[string]any, 7)
	if v, ok := o.CollapseKey(); ok {
		out[KeyCollapseKey] = v
	}
	if v, ok := o.Priority(); ok {
		out[KeyPriority] = string(v)
	}
	if o.f.contentAvailable {
		out[KeyContentAvailable] = true
	}
	if o.f.delayWhileIdle {
		out[KeyDelayWhileIdle] = true
	}
	if v, ok := o.TimeToLive(); ok {
		out[KeyTimeToLive] = v
	}
	if v, ok := o.RestrictedPackageName(); ok {
		out[KeyRestrictedPackageName] = v
	}
	if o.f.dryRun {
		out[KeyDryRun] = true
	}
	return out
}

// IsZero reports whether the options contribute no request body fields.
func (o Options) IsZero() bool {
	return len(o.Fields()) == 0
}

func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Fields())
}

// LogValue implements slog.LogValuer.
func (o Options) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 7)
	if v, ok := o.CollapseKey(); ok {
		attrs = append(attrs, slog.String(KeyCollapseKey, v))
	}
	if v, ok := o.Priority(); ok {
		attrs = append(attrs, slog.String(KeyPriority, string(v)))
	}
	if o.f.contentAvailable {
		attrs = append(attrs, slog.Bool(KeyContentAvailable, true))
	}
	if o.f.delayWhileIdle {
		attrs = append(attrs, slog.Bool(KeyDelayWhileIdle, true))
	}
	if v, ok := o.TimeToLive(); ok {
		attrs = append(attrs, slog.Int(KeyTimeToLive, v))
	}
	if v, ok := o.RestrictedPackageName(); ok {
		attrs = append(attrs, slog.String(KeyRestrictedPackageName, v))
	}
	if o.f.dryRun {
		attrs = append(attrs, slog.Bool(KeyDryRun, true))
	}
	return slog.GroupValue(attrs...)
}
