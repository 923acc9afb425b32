// Package archive provides a zip implementation of driven.Archiver.
// It supports AES-encrypted entries via github.com/yeka/zip.
package archive
