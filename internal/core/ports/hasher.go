package ports

// FileHasher defines the interface for computing file digests.
//
//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type FileHasher interface {
	// ComputeFileHash computes the content digest of the file at path.
	ComputeFileHash(path string) (string, error)
}
