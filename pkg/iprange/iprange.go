// Package iprange instantiates intervals over IP addresses and converts
// them to and from netipx ranges.
package iprange

import (
	"fmt"
	"net/netip"

	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/rangetable"
	"go4.org/netipx"
)

// Compare orders addresses the way netip does: IPv4 before IPv6.
func Compare(a, b netip.Addr) int { return a.Compare(b) }

var Domain = interval.NewDomain(Compare)

func FromIPRange(r netipx.IPRange) (interval.Interval[netip.Addr], error) {
	if !r.IsValid() {
		return interval.Interval[netip.Addr]{}, fmt.Errorf("%w: ip range %s is invalid", interval.ErrInvalidArgument, r)
	}
	return Domain.Closed(r.From(), r.To())
}

func FromPrefix(p netip.Prefix) (interval.Interval[netip.Addr], error) {
	return FromIPRange(netipx.RangeOfPrefix(p))
}

// Parse accepts "from-to" ranges as well as single addresses and prefixes.
func Parse(s string) (interval.Interval[netip.Addr], error) {
	if r, err := netipx.ParseIPRange(s); err == nil {
		return FromIPRange(r)
	}
	if p, err := netip.ParsePrefix(s); err == nil {
		return FromPrefix(p.Masked())
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return interval.Interval[netip.Addr]{}, fmt.Errorf("%w: ip range %s is invalid", interval.ErrInvalidArgument, s)
	}
	return Domain.SingleElement(addr), nil
}

// ToIPRange returns the closed netipx range holding the same addresses as i.
// It reports false when i is unbounded or holds no address.
func ToIPRange(i interval.Interval[netip.Addr]) (netipx.IPRange, bool) {
	if !i.IsValid() || i.IsUnbounded() || i.IsEmpty() {
		return netipx.IPRange{}, false
	}
	from, _ := i.LowerLimit()
	to, _ := i.UpperLimit()
	if !i.IncludesLowerLimit() {
		from = from.Next()
	}
	if !i.IncludesUpperLimit() {
		to = to.Prev()
	}
	r := netipx.IPRangeFrom(from, to)
	return r, r.IsValid()
}

// NewTable returns an allocation table for the addresses from..to.
func NewTable(from, to netip.Addr, opts ...rangetable.Option[netip.Addr]) (rangetable.Table[netip.Addr], error) {
	bounds, err := FromIPRange(netipx.IPRangeFrom(from, to))
	if err != nil {
		return nil, err
	}
	return rangetable.New(fmt.Sprintf("%s-%s", from, to), bounds, opts...)
}

// FreeSet returns the unclaimed addresses of t. Gaps between neighbouring
// claims that hold no address are dropped.
func FreeSet(t rangetable.Table[netip.Addr]) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, f := range t.FreeRanges() {
		if r, ok := ToIPRange(f); ok {
			b.AddRange(r)
		}
	}
	return b.IPSet()
}
