// Package mmdb resolves autonomous system names from a local MaxMind
// GeoLite2-ASN (or compatible) database, for hosts without DNS access.
package mmdb

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/maxminddb-golang"

	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driven.ASNResolver = (*Resolver)(nil)

// Accepted database types.
const (
	databaseGeoLite2ASN = "GeoLite2-ASN"
	databaseSingASN     = "sing-asn"
)

// asnRecord is the structure stored for every network in the database.
type asnRecord struct {
	AutonomousSystemNumber       uint   `maxminddb:"autonomous_system_number"`
	AutonomousSystemOrganization string `maxminddb:"autonomous_system_organization"`
}

// networkIterator is the subset of *maxminddb.Networks used to build the index.
type networkIterator interface {
	Next() bool
	Network(result any) (*net.IPNet, error)
	Err() error
}

// Resolver answers lookups from an index of AS number to organisation,
// built once when the database is opened.
type Resolver struct {
	names map[uint32]string
}

// Open reads the database at path and indexes every AS it mentions.
// The file is closed before Open returns.
func Open(path string) (*Resolver, error) {
	database, err := maxminddb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer database.Close()

	dbType := database.Metadata.DatabaseType
	if dbType != databaseGeoLite2ASN && dbType != databaseSingASN {
		return nil, fmt.Errorf("%w: incorrect database type, expected %s or %s, got %s",
			domain.ErrUnsupportedType, databaseGeoLite2ASN, databaseSingASN, dbType)
	}

	names, err := buildIndex(database.Networks(maxminddb.SkipAliasedNetworks))
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", path, err)
	}
	logger.Debug("MMDB resolver: %s (%s), %d autonomous systems", path, dbType, len(names))

	return &Resolver{names: names}, nil
}

// buildIndex walks every network once. The first organisation seen for an
// AS number wins.
func buildIndex(networks networkIterator) (map[uint32]string, error) {
	names := make(map[uint32]string)
	for networks.Next() {
		var record asnRecord
		if _, err := networks.Network(&record); err != nil {
			return nil, err
		}
		asn := uint32(record.AutonomousSystemNumber)
		if asn == 0 {
			continue
		}
		if _, ok := names[asn]; !ok {
			names[asn] = record.AutonomousSystemOrganization
		}
	}
	if err := networks.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Lookup returns the organisation for asn as a single record.
func (r *Resolver) Lookup(_ context.Context, asn uint32) ([]domain.ASRecord, error) {
	name, ok := r.names[asn]
	if !ok {
		return nil, fmt.Errorf("AS%d: %w", asn, domain.ErrNotFound)
	}
	return []domain.ASRecord{{Number: asn, Name: name}}, nil
}

// Close releases the index.
func (r *Resolver) Close() error {
	r.names = nil
	return nil
}
