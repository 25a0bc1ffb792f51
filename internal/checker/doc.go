// Package checker implements the validation check itself: read a
// fixture file, hand its bytes to a decoder engine, and classify the
// result into one of the three outcome buckets.
//
// The check is a one-shot assertion. There are no retries and no
// recovery: every branch ends in a model.CheckResult, and running the
// same check twice against an unchanged fixture produces the same
// result.
package checker
