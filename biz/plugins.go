package biz

import (
	"fmt"
	"reflect"

	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/config"
	"github.com/vearne/pcapdump/filter"
	"github.com/vearne/pcapdump/plugin"
)

// InOutPlugins struct for holding references to plugins
type InOutPlugins struct {
	Inputs  []PluginReader
	Outputs []PluginWriter
	All     []interface{}
}

// NewPlugins specify and initialize all available plugins
func NewPlugins(settings *config.AppSettings) *InOutPlugins {
	plugins := new(InOutPlugins)

	for _, path := range settings.InputFile {
		slog.Debug("NewFileInput, path:%v", path)
		plugins.registerPlugin(plugin.NewFileInput, path)
	}

	for _, path := range settings.InputFileDir {
		if err := plugin.IsValidDir(path); err != nil {
			slog.Fatal("%v", err)
		}
		slog.Debug("NewFileDirInput, path:%v", path)
		plugins.registerPlugin(plugin.NewFileDirInput, path)
	}

	// ----------output----------
	if settings.OutputStdout {
		slog.Debug("NewStdOutput")
		plugins.registerPlugin(plugin.NewStdOutput, settings.Codec)
	}

	for _, path := range settings.OutputFile {
		plugins.registerPlugin(plugin.NewFileOutput, settings.Codec, path)
	}

	if len(settings.OutputKafkaHost) > 0 {
		plugins.registerPlugin(plugin.NewKafkaOutput,
			settings.OutputKafkaHost, settings.OutputKafkaTopic)
	}

	return plugins
}

// NewFilterChain builds the record filter chain from the settings.
func NewFilterChain(settings *config.AppSettings) (*filter.FilterChain, error) {
	chain := filter.NewFilterChain()

	if len(settings.IncludeFilterPort) > 0 {
		chain.AddIncludeFilter(filter.NewPortIncludeFilter(settings.IncludeFilterPort))
	}
	if len(settings.IncludeFilterAddrMatch) > 0 {
		chain.AddIncludeFilter(filter.NewAddrMatchIncludeFilter(settings.IncludeFilterAddrMatch))
	}
	if len(settings.ExcludeFilterPort) > 0 {
		chain.AddExcludeFilter(filter.NewPortExcludeFilter(settings.ExcludeFilterPort))
	}

	return chain, nil
}

// Automatically detects type of plugin and initialize it
func (plugins *InOutPlugins) registerPlugin(constructor interface{}, options ...interface{}) {
	vc := reflect.ValueOf(constructor)

	// Pre-processing options to make it work with reflect
	vo := []reflect.Value{}
	for _, oi := range options {
		vo = append(vo, reflect.ValueOf(oi))
	}

	// Calling our constructor with list of given options
	results := vc.Call(vo)
	if len(results) > 1 {
		if err, ok := results[1].Interface().(error); ok && err != nil {
			slog.Fatal("initialize plugin:%v", err)
		}
	}
	plugin := results[0].Interface()

	// Some of the output can be Readers as well because return responses
	if r, ok := plugin.(PluginReader); ok {
		plugins.Inputs = append(plugins.Inputs, r)
	}

	if w, ok := plugin.(PluginWriter); ok {
		plugins.Outputs = append(plugins.Outputs, w)
	}
	plugins.All = append(plugins.All, plugin)
}

func (plugins *InOutPlugins) String() string {
	return fmt.Sprintf("#####  len(Inputs):%d, len(Outputs):%d, len(All):%d   #####",
		len(plugins.Inputs), len(plugins.Outputs), len(plugins.All))
}
