package utilx

/*
Must unwraps the `(out T, err error)` pattern for callers that cannot handle
the error, typically package level values and literals known to be valid. It
panics with err itself so the typed error survives a recover.

	v, err := clampx.Exact[int8](limit)
	if err != nil {
		panic(err)
	}

becomes

	v := utilx.Must(clampx.Exact[int8](limit))
*/
func Must[T any](item T, err error) T {
	if err != nil {
		panic(err)
	}
	return item
}
