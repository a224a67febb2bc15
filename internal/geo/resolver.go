// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package geo places hosts on the map: ISO country codes, flag glyphs,
// localized country names and optional MaxMind lookups.
package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
	"grimm.is/flywatch/internal/errors"
)

// Location is what a lookup could learn about an address.
type Location struct {
	Country  CountryCode
	ASNumber uint
	ASNName  string
}

// Resolver looks addresses up in MaxMind country and ASN databases. Either
// database may be absent; a nil *Resolver resolves everything to Unknown.
type Resolver struct {
	country *geoip2.Reader
	asn     *geoip2.Reader
}

// OpenResolver opens the given mmdb files. Empty paths are skipped.
func OpenResolver(countryDB, asnDB string) (*Resolver, error) {
	r := &Resolver{}
	if countryDB != "" {
		db, err := geoip2.Open(countryDB)
		if err != nil {
			return nil, errors.Wrapf(err, errors.KindUnavailable, "open country database %s", countryDB)
		}
		r.country = db
	}
	if asnDB != "" {
		db, err := geoip2.Open(asnDB)
		if err != nil {
			r.Close()
			return nil, errors.Wrapf(err, errors.KindUnavailable, "open asn database %s", asnDB)
		}
		r.asn = db
	}
	return r, nil
}

// Lookup resolves ip. Missing databases leave their fields empty.
func (r *Resolver) Lookup(ip net.IP) (Location, error) {
	loc := Location{Country: Unknown}
	if ip == nil {
		return loc, errors.New(errors.KindValidation, "invalid ip address")
	}
	if r == nil {
		return loc, nil
	}

	if r.country != nil {
		rec, err := r.country.Country(ip)
		if err != nil {
			return loc, errors.Wrap(err, errors.KindInternal, "country lookup")
		}
		loc.Country = ParseCountryCode(rec.Country.IsoCode)
	}
	if r.asn != nil {
		rec, err := r.asn.ASN(ip)
		if err != nil {
			return loc, errors.Wrap(err, errors.KindInternal, "asn lookup")
		}
		loc.ASNumber = rec.AutonomousSystemNumber
		loc.ASNName = rec.AutonomousSystemOrganization
	}
	return loc, nil
}

func (r *Resolver) Close() error {
	if r == nil {
		return nil
	}
	var first error
	for _, db := range []*geoip2.Reader{r.country, r.asn} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
