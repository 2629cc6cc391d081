package ptr

// Ptr возвращает указатель на значение v
func Ptr[T any](v T) *T {
	return &v
}
