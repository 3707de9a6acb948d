package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding"
)

// filetype needs at most that many bytes to recognize any of its types.
const headerSize = 262

// IsArchive checks file signature to see if it is zip archive.
func IsArchive(fname string) (bool, error) {
	f, err := os.Open(fname)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// EntryName returns name of archive entry. Zip does not define file name
// encoding, so names without UTF-8 flag are converted from forced code page
// when one is supplied.
func EntryName(f *zip.File, cp encoding.Encoding) (string, error) {
	name := f.FileHeader.Name
	if cp == nil || !f.FileHeader.NonUTF8 {
		return name, nil
	}
	return cp.NewDecoder().String(name)
}
