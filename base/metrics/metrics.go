/*Package metrics reports counters, gauges and timings to a datadog
statsd agent, stamped with the pod, env and app they came from.

Metric names follow these suffix conventions:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/auctionhouse/base/env"
)

// Ender finishes a timing started by BumpTime.
type Ender interface {
	End()
}

// Service records metrics under the scope given to New. Tags are
// alternating key value pairs.
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New returns a Service whose keys are prefixed with scope. Every
// sample carries pod, env and app tags so dashboards can slice by
// deployment.
func New(scope string) Service {
	return &scoped{
		scope: scope,
		sink: ddSink{
			tags: []string{
				// an empty host drops the agent supplied host tag
				// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
				"host:",
				"pod:" + env.PodName(),
				"env:" + viper.GetString("env_name"),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

type scoped struct {
	scope string
	sink  ddSink
}

// guard keeps a malformed bump, odd tag arity mostly, from taking the
// caller down. The swallowed panic is counted under <kind>.panic.
func (s *scoped) guard(kind, key string, tags []string) {
	if err := recover(); err != nil {
		s.sink.count(kind+".panic", 1, []string{"tag:" + s.scope + "." + key + "#" + strings.Join(tags, "#")})
	}
}

// BumpAvg bumps the average for the given key.
func (s *scoped) BumpAvg(key string, val float64, tags ...string) {
	defer s.guard("bumpavg", key, tags)
	s.sink.gauge(s.scope+"."+key, val, pairTags(tags))
}

// BumpSum bumps the sum for the given key.
func (s *scoped) BumpSum(key string, val float64, tags ...string) {
	defer s.guard("bumpsum", key, tags)
	s.sink.count(s.scope+"."+key, val, pairTags(tags))
}

// BumpHistogram bumps the histogram for the given key.
func (s *scoped) BumpHistogram(key string, val float64, tags ...string) {
	defer s.guard("bumphistogram", key, tags)
	s.sink.histogram(s.scope+"."+key, val, pairTags(tags))
}

// BumpTime starts a timer and returns a value whose End records the
// elapsed time. The usual shape at the top of a function is
//
//     defer s.BumpTime("my.function").End()
func (s *scoped) BumpTime(key string, tags ...string) (e Ender) {
	defer func() {
		if err := recover(); err != nil {
			s.sink.count("bumptime.panic", 1, []string{"tag:" + s.scope + "." + key + "#" + strings.Join(tags, "#")})
			e = noopEnder{}
		}
	}()
	return s.sink.timing(s.scope+"."+key, pairTags(tags))
}

type noopEnder struct{}

func (noopEnder) End() {}
