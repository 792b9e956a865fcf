package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/biz"
	"github.com/vearne/pcapdump/config"
	"github.com/vearne/pcapdump/consts"
)

const banner string = `
    ____  _________  ____  ____  __  ______  ___  ____
   / __ \/ ___/ __ \/ __ \/ __ \/ / / / __ \/ _ \/ __ \
  / /_/ / /__/ /_/ / /_/ / /_/ / /_/ / / / /  __/ /_/ /
 / .___/\___/\__,_/ .___/\__,_/\__,_/_/ /_/\___/ .___/
/_/              /_/                          /_/
`

var settings config.AppSettings
var version bool

func init() {
	flag.BoolVar(&version, "version", false,
		"print version")

	flag.DurationVar(&settings.ExitAfter, "exit-after", 0, "exit after specified duration")

	// #################### input ######################
	flag.Var(&config.MultiStringOption{Params: &settings.InputFile}, "input-file",
		`Decode a capture file (may be gzip compressed):
                pcapdump --input-file="dump.pcap" --output-stdout`)

	flag.Var(&config.MultiStringOption{Params: &settings.InputFileDir}, "input-file-directory",
		`Decode every capture file found under a directory:
                pcapdump --input-file-directory="/var/captures" --output-stdout`)

	// #################### output ######################
	flag.BoolVar(&settings.OutputStdout, "output-stdout", false,
		"Print decoded records to stdout")

	flag.Var(&config.MultiStringOption{Params: &settings.OutputFile}, "output-file",
		`Write decoded records to a file (gzip when the name ends in .gz):
                pcapdump --input-file="dump.pcap" --output-file="frames.json"`)

	flag.Var(&config.MultiStringOption{Params: &settings.OutputKafkaHost}, "output-kafka-host",
		`Publish decoded records to Kafka:
                pcapdump --input-file="dump.pcap" --output-kafka-host="192.168.2.100:9092"`)

	flag.StringVar(&settings.OutputKafkaTopic, "output-kafka-topic",
		"pcapdump", "")

	// #################### filter ######################
	flag.Var(&config.MultiIntOption{Params: &settings.IncludeFilterPort}, "include-filter-port",
		`keep only records whose TCP source or destination port matches`)

	flag.Var(&config.MultiIntOption{Params: &settings.ExcludeFilterPort}, "exclude-filter-port",
		`drop records whose TCP source or destination port matches`)

	flag.StringVar(&settings.IncludeFilterAddrMatch, "include-filter-addr-match", "",
		`keep only records whose source or destination IP matches the regular expression`)

	flag.IntVar(&settings.RateLimitQPS, "rate-limit-qps", 0,
		"limit the number of records emitted per second, 0 means no limit")

	flag.StringVar(&settings.Codec, "codec", "text", `output encoding: "text" or "json"`)
}

func main() {
	fmt.Print(banner)

	adjustLogLevel()

	flag.Parse()
	if version {
		fmt.Println("service: pcapdump")
		fmt.Println("Version", consts.Version)
		fmt.Println("BuildTime", consts.BuildTime)
		fmt.Println("GitTag", consts.GitTag)
		return
	}

	printSettings(&settings)

	filterChain, err := biz.NewFilterChain(&settings)
	if err != nil {
		slog.Fatal("create FilterChain error:%v", err)
	}
	limiter := biz.NewRateLimit(&settings)
	emitter := biz.NewEmitter(filterChain, limiter)
	plugins := biz.NewPlugins(&settings)

	slog.Info("plugins:%v", plugins)
	if len(plugins.Inputs) == 0 {
		slog.Fatal("no input specified, see --help")
	}

	doneCh := make(chan struct{})
	go func() {
		emitter.Start(plugins)
		emitter.Wait()
		close(doneCh)
	}()

	closeCh := make(chan int)
	if settings.ExitAfter > 0 {
		slog.Info("Running pcapdump for a duration of %s\n", settings.ExitAfter)

		time.AfterFunc(settings.ExitAfter, func() {
			slog.Info("run timeout %s\n", settings.ExitAfter)
			close(closeCh)
		})
	}
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	exit := 0
	select {
	case <-c:
		exit = 1
	case <-closeCh:
		exit = 0
	case <-doneCh:
		// all inputs drained
		exit = 0
	}
	emitter.Close()
	os.Exit(exit)
}

func printSettings(settings *config.AppSettings) {
	slog.Info("input-file, %v", settings.InputFile)
	slog.Info("input-file-directory, %v", settings.InputFileDir)

	slog.Info("output-stdout, %v", settings.OutputStdout)
	slog.Info("output-file, %v", settings.OutputFile)
	slog.Info("output-kafka-host, %v", settings.OutputKafkaHost)
	slog.Info("output-kafka-topic, %v", settings.OutputKafkaTopic)

	slog.Info("codec, %v", settings.Codec)
}

func adjustLogLevel() {
	logLevel := os.Getenv("SIMPLE_LOG_LEVEL")
	if len(logLevel) > 0 {
		return
	}
	slog.SetLevel(slog.InfoLevel)
}
