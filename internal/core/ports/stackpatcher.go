package ports

// StackPatcher clears the executable flag on GNU_STACK program headers.
//
//go:generate go run go.uber.org/mock/mockgen -source=stackpatcher.go -destination=mocks/mock_stackpatcher.go -package=mocks
type StackPatcher interface {
	// FixExecutableStack rewrites the GNU_STACK segment of the file from RWX
	// to RW in place. It reports whether a patch was applied; files with no
	// GNU_STACK segment or an already clean one are left untouched.
	FixExecutableStack(path string) (bool, error)
}
