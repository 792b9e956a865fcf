package filter

import (
	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/model"
)

// PortExcludeFilter drops records whose TCP source or destination port is in
// the given list. Records without a decoded transport layer pass through.
type PortExcludeFilter struct {
	ports map[uint16]struct{}
}

func NewPortExcludeFilter(ports []int) *PortExcludeFilter {
	var f PortExcludeFilter
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
func (f *PortExcludeFilter) Filter(record *model.FrameRecord) (*model.FrameRecord, bool) {
	if record.Transport == nil {
		return record, true
	}
	if _, ok := f.ports[record.Transport.SrcPort]; ok {
		return nil, false
	}
	if _, ok := f.ports[record.Transport.DstPort]; ok {
		return nil, false
	}
	return record, true
}
