package fcm

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of message options. Absent keys leave the
// corresponding option untouched. JSON documents decode as well, since JSON
// is a subset of YAML.
//
//	priority: high
//	time_to_live: 3600
//	dry_run: true
type File struct {
	CollapseKey           *string `yaml:"collapse_key" json:"collapse_key,omitempty"`
	Priority              *string `yaml:"priority" json:"priority,omitempty"`
	ContentAvailable      *bool   `yaml:"content_available" json:"content_available,omitempty"`
	DelayWhileIdle        *bool   `yaml:"delay_while_idle" json:"delay_while_idle,omitempty"`
	TimeToLive            *int    `yaml:"time_to_live" json:"time_to_live,omitempty"`
	RestrictedPackageName *string `yaml:"restricted_package_name" json:"restricted_package_name,omitempty"`
	DryRun                *bool   `yaml:"dry_run" json:"dry_run,omitempty"`
}

// Apply passes every present field through the builder setters.
// It stops at the first rejected value; fields applied before it stay set.
func (f File) Apply(b *OptionsBuilder) error {
	if f.CollapseKey != nil {
		b.SetCollapseKey(*f.CollapseKey)
	}
	if f.Priority != nil {
		if _, err := b.SetPriority(Priority(*f.Priority)); err != nil {
			return err
		}
	}
	if f.ContentAvailable != nil {
		b.SetContentAvailable(*f.ContentAvailable)
	}
	if f.DelayWhileIdle != nil {
		b.SetDelayWhileIdle(*f.DelayWhileIdle)
	}
	if f.TimeToLive != nil {
		if _, err := b.SetTimeToLive(*f.TimeToLive); err != nil {
			return err
		}
	}
	if f.RestrictedPackageName != nil {
		b.SetRestrictedPackageName(*f.RestrictedPackageName)
	}
	if f.DryRun != nil {
		b.SetDryRun(*f.DryRun)
	}
	return nil
}

// ParseFile decodes an options document. Unknown keys are rejected.
// An empty document yields an empty File.
func ParseFile(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, errors.Join(ErrDecodeFile, err)
	}
	return f, nil
}

// DecodeFile decodes an options document into a new builder.
func DecodeFile(r io.Reader) (*OptionsBuilder, error) {
	f, err := ParseFile(r)
	if err != nil {
		return nil, err
	}
	b := NewOptionsBuilder()
	if err := f.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}
