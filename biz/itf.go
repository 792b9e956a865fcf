package biz

import "github.com/vearne/pcapdump/model"

// PluginReader is an interface for input plugins
type PluginReader interface {
	Read() (record *model.FrameRecord, err error)
}

// PluginWriter is an interface for output plugins
type PluginWriter interface {
	Write(record *model.FrameRecord) (err error)
}
