package config

import (
	"fmt"
	"strconv"
	"time"
)

// MultiStringOption allows the same string flag to be passed several times;
// every value is collected into the target slice.
type MultiStringOption struct {
	Params *[]string
}

func (h *MultiStringOption) String() string {
	if h.Params == nil {
		return ""
	}
	return fmt.Sprint(*h.Params)
}

// Set gets called multiple times for each flag with same name
func (h *MultiStringOption) Set(value string) error {
	if h.Params == nil {
		return nil
	}

	*h.Params = append(*h.Params, value)
	return nil
}

// MultiIntOption allows the same integer flag to be passed several times.
type MultiIntOption struct {
	Params *[]int
}

func (h *MultiIntOption) String() string {
	if h.Params == nil {
		return ""
	}

	return fmt.Sprint(*h.Params)
}

// Set gets called multiple times for each flag with same name
func (h *MultiIntOption) Set(value string) error {
	if h.Params == nil {
		return nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*h.Params = append(*h.Params, val)
	return nil
}

// AppSettings holds the whole command-line configuration.
type AppSettings struct {
	ExitAfter time.Duration `json:"exit-after"`

	// ######################## input #######################
	InputFile    []string `json:"input-file"`
	InputFileDir []string `json:"input-file-directory"`

	// ######################## output ########################
	OutputStdout bool     `json:"output-stdout"`
	OutputFile   []string `json:"output-file"`

	OutputKafkaHost  []string `json:"output-kafka-host"`
	OutputKafkaTopic string   `json:"output-kafka-topic"`

	// --- filter ---
	IncludeFilterPort      []int  `json:"include-filter-port"`
	ExcludeFilterPort      []int  `json:"exclude-filter-port"`
	IncludeFilterAddrMatch string `json:"include-filter-addr-match"`

	// --- rate limit ---
	// Records per second
	RateLimitQPS int `json:"rate-limit-qps"`

	// --- other ---
	Codec string `json:"codec"`
}
