package filter

import (
	"regexp"

	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/model"
)

// PortIncludeFilter passes records whose TCP source or destination port is
// in the given list. Records without a decoded transport layer are dropped:
// a port filter is a statement about TCP traffic.
type PortIncludeFilter struct {
	ports map[uint16]struct{}
}

func NewPortIncludeFilter(ports []int) *PortIncludeFilter {
	var f PortIncludeFilter
	f.ports = make(map[uint16]struct{}, len(ports))
	for _, p := range ports {
		if p <= 0 || p > 65535 {
			slog.Fatal("invalid port %d", p)
		}
		f.ports[uint16(p)] = struct{}{}
	}
	return &f
}

// Filter :If ok is true, it means that the record can pass
func (f *PortIncludeFilter) Filter(record *model.FrameRecord) (*model.FrameRecord, bool) {
	if record.Transport == nil {
		return nil, false
	}
	if _, ok := f.ports[record.Transport.SrcPort]; ok {
		return record, true
	}
	if _, ok := f.ports[record.Transport.DstPort]; ok {
		return record, true
	}
	return nil, false
}

// AddrMatchIncludeFilter passes records whose source or destination network
// address matches the given regular expression.
type AddrMatchIncludeFilter struct {
	r *regexp.Regexp
}

func NewAddrMatchIncludeFilter(expr string) *AddrMatchIncludeFilter {
	var f AddrMatchIncludeFilter
	var err error
	f.r, err = regexp.Compile(expr)
	if err != nil {
		slog.Fatal("expr error:%v", err)
	}
	return &f
}

// Filter :If ok is true, it means that the record can pass
func (f *AddrMatchIncludeFilter) Filter(record *model.FrameRecord) (*model.FrameRecord, bool) {
	if record.Network == nil {
		return nil, false
	}
	if f.r.MatchString(record.Network.SrcIP) || f.r.MatchString(record.Network.DstIP) {
		return record, true
	}
	return nil, false
}
