package utils

import (
	"encoding/json"
	"os"
	"relview/logger"
)

func CloseFile(f *os.File) error {
	if err := f.Close(); err != nil {
		logger.Warn("Can't close file '%s': %s", f.Name(), err.Error())
		return err
	}
	return nil
}

//ReadJsonFile decodes the JSON document stored at path into v.
func ReadJsonFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer CloseFile(f)
	return json.NewDecoder(f).Decode(v)
}
