package domain

import "errors"

var ErrUnsupportedFileType = errors.New("unsupported file type")
var ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
var ErrFileNotFound = errors.New("file not found")
