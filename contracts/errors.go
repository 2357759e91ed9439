package contracts

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input path, please provide a directory or PNG file")
	ErrNoImagesFound = errors.New("no PNG files found in the specified path")
	ErrParse         = errors.New("invalid page specification")
	ErrDimensionRead = errors.New("could not read image dimensions")
	ErrIO            = errors.New("i/o error")
)
