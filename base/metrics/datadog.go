package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/auctionhouse/base/log"
)

const (
	agentPort = 8125
	// samples buffered before a flush to the agent
	bufferedSamples = 10
	// statsd sends every sample, no client side dropping
	sampleAlways = 1
)

var (
	connectOnce sync.Once

	// agent is shared by every Service. statsd.Client is safe for
	// concurrent use and buffering works best over one connection.
	agent statsSink
)

// statsSink is the slice of statsd.Client this package relies on,
// also satisfied by LogClient for agentless runs.
type statsSink interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// connect dials the statsd agent named by datadog_host. Without one
// the samples go to the debug log, which keeps local runs observable.
func connect() {
	host := viper.GetString("datadog_host")
	if host == "" {
		agent = &LogClient{}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, agentPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	cli, err := statsd.NewBuffered(addr, bufferedSamples)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	agent = cli
}

// ddSink stamps every sample with the deployment tags before handing
// it to the agent.
type ddSink struct {
	tags []string
}

func (d ddSink) gauge(key string, val float64, tags []string) {
	connectOnce.Do(connect)
	if err := agent.Gauge(key, val, append(d.tags, tags...), sampleAlways); err != nil {
		bumpFail("gauge", key, val, err)
	}
}

func (d ddSink) count(key string, val float64, tags []string) {
	connectOnce.Do(connect)
	if err := agent.Count(key, int64(val), append(d.tags, tags...), sampleAlways); err != nil {
		bumpFail("count", key, val, err)
	}
}

func (d ddSink) histogram(key string, val float64, tags []string) {
	connectOnce.Do(connect)
	if err := agent.Histogram(key, val, append(d.tags, tags...), sampleAlways); err != nil {
		bumpFail("histogram", key, val, err)
	}
}

func (d ddSink) timing(key string, tags []string) Ender {
	connectOnce.Do(connect)
	return &timing{start: time.Now(), key: key, tags: append(d.tags, tags...)}
}

func bumpFail(kind, key string, val float64, err error) {
	log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "kind": kind}).Error("Bump fail")
}

// timing measures wall time between BumpTime and End with millisecond
// resolution.
type timing struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timing) End() {
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := agent.TimeInMilliseconds(t.key, ms, t.tags, sampleAlways); err != nil {
		bumpFail("timing", t.key, ms, err)
	}
}

// pairTags folds alternating key value strings into datadog k:v tags.
// Odd arity is a programming error and panics; bump sites recover it.
func pairTags(kv []string) []string {
	if len(kv) == 0 {
		return nil
	}
	if len(kv)%2 != 0 {
		log.Log().WithField("tags", kv).Panic("tag length needs to be multiple of 2")
	}
	out := make([]string, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, kv[i]+":"+kv[i+1])
	}
	return out
}
