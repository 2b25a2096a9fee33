package cymru

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/asroute/internal/core/domain"
)

// recordFields is the number of "|" separated fields in an AS TXT record.
const recordFields = 5

// ParseRecord parses one TXT answer from the asn zone.
// The name is the last field and may itself contain "|".
func ParseRecord(txt string) (domain.ASRecord, error) {
	fields := strings.SplitN(txt, "|", recordFields)
	if len(fields) != recordFields {
		return domain.ASRecord{}, fmt.Errorf("%w: expected %d fields in %q", domain.ErrInvalidInput, recordFields, txt)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	asn, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return domain.ASRecord{}, fmt.Errorf("%w: AS number %q: %w", domain.ErrInvalidInput, fields[0], err)
	}

	return domain.ASRecord{
		Number:    uint32(asn),
		Country:   fields[1],
		Registry:  fields[2],
		Allocated: fields[3],
		Name:      fields[4],
	}, nil
}
