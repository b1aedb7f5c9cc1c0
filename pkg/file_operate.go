package pkg

import (
	"os"

	"github.com/pkg/errors"
)

// CheckFileExist reports whether filePath names an existing file.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", filePath)
	}
	return true, nil
}

// ReadFileAll slurps the whole file into a string.
func ReadFileAll(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", filePath)
	}
	return string(data), nil
}
