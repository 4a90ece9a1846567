package survey

// String returns a pointer to v. Convenience for building payloads in
// generators and tests, where most record fields are optional.
func String(v string) *string { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
