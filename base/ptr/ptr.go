// Package ptr builds pointers to literals, mostly for optional
// document fields and partial updates.
package ptr

// String returns a pointer to value.
func String(value string) *string {
	return &value
}

// Int returns a pointer to value.
func Int(value int) *int {
	return &value
}

// Int32 returns a pointer to value.
func Int32(value int32) *int32 {
	return &value
}

// Int64 returns a pointer to value.
func Int64(value int64) *int64 {
	return &value
}
