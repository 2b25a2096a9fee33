// Package cymru resolves autonomous system names through the Team Cymru
// IP-to-ASN DNS service.
//
// A query for AS13335.asn.cymru.com returns TXT data of the form
//
//	13335 | US | arin | 2010-07-14 | CLOUDFLARENET, US
//
// which is parsed into a domain.ASRecord. Queries are paced by a token
// bucket and are never retried.
package cymru
