package filter

import "github.com/vearne/pcapdump/model"

type Filter interface {
	// Filter :If ok is true, it means that the record can pass
	Filter(record *model.FrameRecord) (*model.FrameRecord, bool)
}

type FilterChain struct {
	includeFilters []Filter
	excludeFilters []Filter
}

func NewFilterChain() *FilterChain {
	var chain FilterChain
	chain.includeFilters = make([]Filter, 0)
	chain.excludeFilters = make([]Filter, 0)
	return &chain
}

func (c *FilterChain) AddIncludeFilter(f Filter) {
	c.includeFilters = append(c.includeFilters, f)
}

func (c *FilterChain) AddExcludeFilter(f Filter) {
	c.excludeFilters = append(c.excludeFilters, f)
}

func (c *FilterChain) Filter(record *model.FrameRecord) (*model.FrameRecord, bool) {
	for _, f := range c.includeFilters {
		if _, ok := f.Filter(record); !ok {
			return nil, false
		}
	}

	for _, f := range c.excludeFilters {
		if _, ok := f.Filter(record); !ok {
			return nil, false
		}
	}
	return record, true
}
