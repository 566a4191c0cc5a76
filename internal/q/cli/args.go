package cli

// NoArgs validates that there are no positional args.
func NoArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return usageErrorf("expected no args, got %d", len(args))
}

// ExactArgs returns an ArgsFunc that validates that exactly n args are provided.
func ExactArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) == n {
			return nil
		}
		if n == 1 {
			return usageErrorf("expected 1 arg, got %d", len(args))
		}
		return usageErrorf("expected %d args, got %d", n, len(args))
	}
}

