package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/models"
)

// gzipMagic is the two-byte header of a gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// ParseString parses a JSON document held in a string, rejecting empty or
// whitespace-only input before handing off to Parse.
func ParseString(text string) (models.Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	value, err := Parse(text)
	if err != nil {
		return nil, errors.NewParsingError(err.Error(), err)
	}
	return value, nil
}

// ParseFile parses a JSON document from a file path. Gzip-compressed
// files are decompressed transparently.
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}

	if bytes.HasPrefix(data, gzipMagic) {
		data, err = gunzip(data)
		if err != nil {
			return nil, errors.NewInputError(
				fmt.Sprintf("failed to decompress file '%s'", filePath),
				err,
			)
		}
	}

	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return ParseString(string(data))
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}
