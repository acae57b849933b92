// Copyright © 2026 NVIDIA Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NVIDIA/safecast/pkg/safecast"
)

// Recorder counts conversion outcomes per kind pair. The conversions stay
// pure; a Recorder only observes the outcome that is returned to the caller.
type Recorder struct {
	outcomes *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its metrics with reg, or
// with the default registry if reg is nil.
func NewRecorder(prefix string, reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_conversions_total",
			Help: "A counter of checked integer conversions by kind pair and outcome.",
		},
		[]string{"from", "to", "outcome"},
	)
	reg.MustRegister(outcomes)
	return &Recorder{outcomes: outcomes}
}

// Observe records the outcome err of a conversion between two kinds and
// returns err unchanged.
func (r *Recorder) Observe(from, to safecast.IntKind, err error) error {
	outcome := "ok"
	if err != nil {
		if kind, ok := safecast.ErrorKindOf(err); ok {
			outcome = kind.String()
		} else {
			outcome = "error"
		}
	}
	r.outcomes.WithLabelValues(from.String(), to.String(), outcome).Inc()
	return err
}

// Convert is safecast.Convert with the outcome recorded by r. The from and
// to labels name the kinds as laid out on this host: int and uint are
// counted as int64/uint64 on 64-bit targets and int32/uint32 on 32-bit
// ones, and named types under their underlying kind. Use Observe with
// explicit kinds to label differently.
func Convert[To, From safecast.Integer](r *Recorder, v From) (To, error) {
	out, err := safecast.Convert[To](v)
	return out, r.Observe(safecast.KindOf[From](), safecast.KindOf[To](), err)
}
