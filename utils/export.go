package utils

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// ExportCensusCSV writes per-generation census records to a CSV file
// with a header row.
func ExportCensusCSV(path string, records []CensusRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[ExportCensusCSV] failed to create file: %+v", path)
	}
	defer f.Close()

	if err = gocsv.Marshal(records, f); err != nil {
		return errors.Wrapf(err, "[ExportCensusCSV] failed to write records to: %+v", path)
	}
	return nil
}
