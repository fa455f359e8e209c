package statsd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goto/salt/log"
)

// Metric represents a statsd metric.
type Metric struct {
	logger        log.Logger
	name          string
	rate          float64
	tags          map[string]string
	withInfluxTag bool
	publishFunc   func(name string, tags []string, rate float64) error
}

// Success tags the metric as successful.
func (m *Metric) Success() *Metric {
	return m.Tag("success", "true")
}

// Failure tags the metric as failure.
func (m *Metric) Failure(error) *Metric {
	return m.Tag("success", "false")
}

// Status tags the metric with an HTTP status code.
func (m *Metric) Status(code int) *Metric {
	return m.Tag("status_code", strconv.Itoa(code))
}

func (m *Metric) Tag(key string, val string) *Metric {
	if m == nil {
		return nil
	}

	if m.tags == nil {
		m.tags = map[string]string{}
	}

	m.tags[key] = val
	return m
}

// Publish sends the metric with its collected tags.
func (m *Metric) Publish() {
	if m == nil {
		return
	}

	name, tags := m.name, []string(nil)
	if m.withInfluxTag {
		name = m.influxName()
	} else {
		tags = m.datadogTags()
	}

	if err := m.publishFunc(name, tags, m.rate); err != nil && m.logger != nil {
		m.logger.Warn("failed to publish metric", "name", name, "err", err)
	}
}

func (m *Metric) sortedKeys() []string {
	keys := make([]string, 0, len(m.tags))
	for k := range m.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Metric) datadogTags() []string {
	tags := []string{}
	for _, k := range m.sortedKeys() {
		tags = append(tags, fmt.Sprintf("%s:%s", k, m.tags[k]))
	}
	return tags
}

func (m *Metric) influxName() string {
	finalName := m.name
	for _, k := range m.sortedKeys() {
		finalName = fmt.Sprintf("%s,%s=%s", finalName, k, m.tags[k])
	}
	return finalName
}
