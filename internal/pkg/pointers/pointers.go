package pointers

// Int returns a pointer to v, for optional aisle positions.
func Int(v int) *int { return &v }
