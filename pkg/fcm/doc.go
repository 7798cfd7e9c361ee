// Package fcm builds validated delivery options for Firebase Cloud Messaging
// downstream messages.
//
// Options are accumulated on a mutable OptionsBuilder and frozen into an
// immutable Options value with Build. Validation happens in the setters, so a
// built Options is always valid and Build itself cannot fail.
//
// # Options
//
//   - collapse key – groups messages so only the latest is delivered
//   - priority – PriorityHigh or PriorityNormal
//   - content available – wakes an inactive client app (APNs content-available)
//   - delay while idle – holds the message until the device is active
//   - time to live – seconds to keep an undelivered message, 0..MaxTimeToLive
//   - restricted package name – limits delivery to one application package
//   - dry run – validates the request without delivering it
//
// # Usage
//
//	b := fcm.NewOptionsBuilder().
//	    SetCollapseKey("score-update").
//	    SetDryRun(true)
//
//	if _, err := b.SetPriority(fcm.PriorityHigh); err != nil {
//	    return err
//	}
//	if _, err := b.SetTimeToLive(3600); err != nil {
//	    return err
//	}
//
//	opts := b.Build()
//	body, _ := json.Marshal(opts) // {"collapse_key":"score-update","dry_run":true,...}
//
// Options can also be read from a YAML or JSON document with DecodeFile, or
// from FCM_* environment variables with LoadConfig.
//
// # Error Handling
//
// Rejected values return an *InvalidOptionError that matches ErrInvalidOption
// with errors.Is. A rejected setter leaves the builder unchanged.
//
// # Concurrency
//
// OptionsBuilder is meant for a single owner and has no internal locking.
// Options is immutable and may be shared freely between goroutines.
package fcm
