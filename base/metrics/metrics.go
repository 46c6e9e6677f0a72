// Package metrics wraps datadog-go statsd to facilitate metric recording.
// Naming convention:
// - Internal process time: *.time
// - External latency: *.latency
// - Error: *.err
package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/pokemarket/goapi/base/env"
	"github.com/pokemarket/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// nopCli swallows metrics when no agent is configured
type nopCli struct{}

func (nopCli) Count(string, int64, []string, float64) error             { return nil }
func (nopCli) Histogram(string, float64, []string, float64) error       { return nil }
func (nopCli) TimeInMilliseconds(string, float64, []string, float64) error { return nil }

func initDDClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		ddClient = nopCli{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = cli
}

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	ddTags := []string{
		"host:", // remove unused host tag
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	return &metricsImpl{
		pkgName: pkgName,
		ddTags:  ddTags,
	}
}

type metricsImpl struct {
	pkgName string
	ddTags  []string
}

// parseTag pairs up "k", "v" varargs into "k:v" datadog tags
func parseTag(tags []string) []string {
	parsed := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		parsed = append(parsed, tags[i]+":"+tags[i+1])
	}
	return parsed
}

func (mt *metricsImpl) key(key string) string {
	return strings.Join([]string{mt.pkgName, key}, ".")
}

// BumpSum bumps the sum for the given key
func (mt *metricsImpl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Count(mt.key(key), int64(val), append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum fail")
	}
}

// BumpHistogram bumps the histogram for the given key
func (mt *metricsImpl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Histogram(mt.key(key), val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpHistogram fail")
	}
}

type timeEnder struct {
	mt    *metricsImpl
	key   string
	tags  []string
	start time.Time
}

func (e *timeEnder) End() {
	initOnce.Do(initDDClient)
	elapsed := float64(time.Since(e.start)) / float64(time.Millisecond)
	if err := ddClient.TimeInMilliseconds(e.mt.key(e.key), elapsed, append(e.mt.ddTags, parseTag(e.tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": e.key}).Error("BumpTime fail")
	}
}

// BumpTime records the time elapsed between the call and End for the given key
func (mt *metricsImpl) BumpTime(key string, tags ...string) Ender {
	return &timeEnder{mt: mt, key: key, tags: tags, start: time.Now()}
}
