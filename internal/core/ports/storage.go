package ports

import "mime/multipart"

// ImageStore persists uploaded post images under a flat upload root.
type ImageStore interface {
	// Save validates the upload (extension allow-list, size cap), writes it
	// under a server-generated name, and returns the relative path to record
	// on the post. Client-supplied filenames are never reused.
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes a previously stored image by its recorded path.
	// A missing file is not an error.
	Remove(relPath string) error
	// Resolve maps a stored filename to its absolute on-disk path, or
	// domain.ErrFileNotFound. Only the base name is honoured.
	Resolve(filename string) (string, error)
}
