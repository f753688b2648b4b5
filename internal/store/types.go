package store

import "errors"

// ErrIndexMissing reports that the feed query would run without its index.
var ErrIndexMissing = errors.New("the feed query requires an index")

// User is a registered account.
type User struct {
	UID       string
	Name      string
	Email     string
	CreatedAt int64
}

// Credential holds the password verifier for a user.
type Credential struct {
	UID          string
	PasswordHash []byte
	Salt         []byte
}

// File is the metadata of an uploaded attachment blob.
type File struct {
	Key         string
	OwnerUID    string
	ContentType string
	Size        int64
	Backend     string // disk or s3
	CreatedAt   int64
}
