// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package prometheus

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Snapshot flattens the metric families starting with prefix into a map.
// Keys have the form name{label=value,...}. Summaries and histograms are
// represented by their sample count.
func Snapshot(gatherer prometheus.Gatherer, prefix string) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64)

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), prefix) {
			continue
		}

		for _, metric := range family.GetMetric() {
			result[metricKey(family.GetName(), metric.GetLabel())] = metricValue(family.GetType(), metric)
		}
	}

	return result, nil
}

func metricKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}

	pairs := make([]string, len(labels))
	for idx, label := range labels {
		pairs[idx] = label.GetName() + "=" + label.GetValue()
	}

	return name + "{" + strings.Join(pairs, ",") + "}"
}

func metricValue(kind dto.MetricType, metric *dto.Metric) float64 {
	switch kind {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue()
	case dto.MetricType_SUMMARY:
		return float64(metric.GetSummary().GetSampleCount())
	case dto.MetricType_HISTOGRAM, dto.MetricType_GAUGE_HISTOGRAM:
		return float64(metric.GetHistogram().GetSampleCount())
	default:
		return metric.GetUntyped().GetValue()
	}
}
