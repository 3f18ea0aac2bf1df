// Package handler implements the upload and processing Lambda functions.
package handler

import "time"

type options struct {
	now func() time.Time
}

// Option configures an Uploader or Processor.
type Option func(*options)

// WithClock overrides the time source used for object keys and record
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
