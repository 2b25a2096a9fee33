package cymru

import (
	"context"
	"fmt"
	"math"
	"net"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/asroute/internal/core/domain"
	"github.com/custodia-labs/asroute/internal/core/ports/driven"
	"github.com/custodia-labs/asroute/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driven.ASNResolver = (*Resolver)(nil)

// resolvConfPath is read when no server is configured.
var resolvConfPath = "/etc/resolv.conf"

// Resolver looks up AS names with DNS TXT queries.
type Resolver struct {
	client  *dns.Client
	server  string
	zone    string
	limiter *rate.Limiter
}

// New creates a resolver from settings. An empty server selects the first
// nameserver of the system configuration.
func New(settings domain.CymruSettings) (*Resolver, error) {
	zone := strings.Trim(settings.Zone, ".")
	if zone == "" {
		return nil, fmt.Errorf("%w: empty zone", domain.ErrInvalidInput)
	}

	server := settings.Server
	if server == "" {
		server = systemServer()
	}
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}

	r := &Resolver{
		client: &dns.Client{Net: "udp", Timeout: settings.Timeout},
		server: server,
		zone:   zone,
	}
	if settings.Rate > 0 {
		burst := int(math.Ceil(settings.Rate))
		r.limiter = rate.NewLimiter(rate.Limit(settings.Rate), burst)
	}

	logger.Debug("Cymru resolver: server=%s zone=%s timeout=%s rate=%.1f/s",
		r.server, r.zone, settings.Timeout, settings.Rate)
	return r, nil
}

// QueryName returns the fully qualified name queried for asn.
func (r *Resolver) QueryName(asn uint32) string {
	return dns.Fqdn(fmt.Sprintf("AS%d.%s", asn, r.zone))
}

// Lookup queries the TXT records for asn.
// NXDOMAIN is reported as domain.ErrNotFound.
func (r *Resolver) Lookup(ctx context.Context, asn uint32) ([]domain.ASRecord, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	name := r.QueryName(asn)
	msg := new(dns.Msg)
	msg.SetQuestion(name, dns.TypeTXT)

	in, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	default:
		return nil, fmt.Errorf("query %s: %s", name, dns.RcodeToString[in.Rcode])
	}

	records := make([]domain.ASRecord, 0, len(in.Answer))
	for _, rr := range in.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}
		record, err := ParseRecord(strings.Join(txt.Txt, ""))
		if err != nil {
			logger.Debug("Skipping answer for %s: %v", name, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Close implements driven.ASNResolver.
func (r *Resolver) Close() error {
	return nil
}

// systemServer returns the first configured nameserver, or the default.
func systemServer() string {
	cfg, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(cfg.Servers) == 0 {
		logger.Debug("No system nameserver (%v), using %s", err, domain.DefaultCymruServer)
		return domain.DefaultCymruServer
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}
