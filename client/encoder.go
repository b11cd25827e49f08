package client

import (
	"encoding/base64"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/chaiyapat/worklog/models"
)

// EncodeFile reads a file's bytes and produces the transport encoding used
// by the submission payload. The media type is sniffed from the content;
// when the sniff is inconclusive the declared type wins, and when neither
// is known the generic binary type is used. A read failure surfaces as a
// *FileReadError and leaves nothing encoded.
func EncodeFile(r io.Reader, declaredMime, fileName string) (*models.EncodedFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileReadError{Err: err}
	}

	return &models.EncodedFile{
		Content:  base64.StdEncoding.EncodeToString(data),
		MimeType: resolveMimeType(data, declaredMime),
		FileName: fileName,
	}, nil
}

// EncodeFileFromPath encodes the file at path, deriving the declared media
// type from its extension.
func EncodeFileFromPath(path string) (*models.EncodedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{Err: err}
	}
	defer f.Close()

	declared := mime.TypeByExtension(filepath.Ext(path))
	return EncodeFile(f, declared, filepath.Base(path))
}

// DecodeContent reverses the transport encoding.
func DecodeContent(encoded *models.EncodedFile) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded.Content)
}

// resolveMimeType picks the best-known media type for the file bytes
func resolveMimeType(data []byte, declared string) string {
	sniffed := http.DetectContentType(data)
	if sniffed != models.DefaultMimeType {
		return sniffed
	}
	if declared != "" {
		return declared
	}
	return models.DefaultMimeType
}
