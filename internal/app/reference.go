// internal/app/reference.go
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kmap/internal/clibase"
	"kmap/internal/fasta"
	"kmap/internal/mapper"
	"kmap/internal/output"
	"kmap/internal/version"
)

// loadMapper reads the reference FASTA and indexes it. Multi-record
// references are concatenated in file order.
func loadMapper(ctx context.Context, c clibase.Common, log logrus.FieldLogger) (*mapper.Mapper, string, error) {
	recs, err := fasta.ReadFASTA(ctx, c.Reference)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, "", err
		}
		return nil, "", ioError{err}
	}
	m := mapper.New(c.K, mapper.WithLogger(log))
	m.LoadReferenceRecords(recs)

	name := filepath.Base(c.Reference)
	if len(recs) == 1 && recs[0].ID != "" {
		name = recs[0].ID
	}
	return m, name, nil
}

func runMeta(m *mapper.Mapper, refName string) output.Meta {
	return output.Meta{
		RunID:   uuid.NewString(),
		Version: version.Version,
		K:       m.K(),
		RefName: refName,
		RefLen:  m.Index().Len(),
	}
}
