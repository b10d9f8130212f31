package token

type tokenOpts struct {
	maxSize int
}

type TokenOpt func(*tokenOpts)

// TokenMaxSize limits tokens to n bytes.  Bytes beyond the limit are
// consumed and silently dropped.  n <= 0 means no limit, the default.
func TokenMaxSize(n int) TokenOpt {
	return func(o *tokenOpts) { o.maxSize = n }
}
