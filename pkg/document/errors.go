package document

import "errors"

// Sentinel errors returned by tree operations. All of them are recoverable:
// the caller refuses the mutation, surfaces a message, and the session
// continues. Only a decode failure at initial load is fatal to the program.
var (
	// ErrPathNotFound is returned when a path step does not exist on a
	// container, or when a step tries to descend through a leaf.
	ErrPathNotFound = errors.New("path not found")

	// ErrKeyExists is returned by RenameKey when the new key is already
	// present on the parent object; renames never silently overwrite.
	ErrKeyExists = errors.New("key already exists")

	// ErrNotRenameable is returned when a rename targets anything other
	// than an object member (array elements and the root have no key).
	ErrNotRenameable = errors.New("not renameable")

	// ErrRootDeletion is returned by Delete on an empty path; the document
	// root is never deletable.
	ErrRootDeletion = errors.New("document root cannot be deleted")
)
