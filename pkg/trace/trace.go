// Package trace replays growth workloads against vectors and records how
// their capacity evolves.
package trace

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-vector/pkg/datastructs/vector"
	"github.com/huynhanx03/go-vector/pkg/settings"
	"github.com/huynhanx03/go-vector/pkg/utils"
)

// checkEvery is how many operations run between context checks.
const checkEvery = 1024

// ErrUnknownKind is returned for a workload kind the runner does not know.
var ErrUnknownKind = errors.New("trace: unknown workload kind")

// Result summarizes one replayed workload.
type Result struct {
	Name           string
	Kind           string
	Ops            int
	Stats          vector.Stats
	PowerOfTwoCaps int // Capacities seen that were powers of two
	Capacities     []int
	RefCapacity    int // Smallest power of two holding Count elements
}

// Run replays every workload concurrently, each on its own vector, and
// returns the results in workload order.
func Run(ctx context.Context, log *zap.Logger, workloads []settings.Workload) ([]Result, error) {
	results := make([]Result, len(workloads))
	g, ctx := errgroup.WithContext(ctx)
	for i, w := range workloads {
		g.Go(func() error {
			res, err := replay(ctx, log.With(zap.String("workload", w.Name)), w)
			if err != nil {
				return errors.Wrapf(err, "workload %s", w.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func replay(ctx context.Context, log *zap.Logger, w settings.Workload) (Result, error) {
	res := Result{Name: w.Name, Kind: w.Kind, RefCapacity: utils.CeilToPowerOfTwo(w.Count)}

	var v *vector.Vector[int]
	var op func(i int)
	switch w.Kind {
	case settings.KindPushBack:
		v = vector.New[int]()
		op = func(i int) { v.PushBack(i) }
	case settings.KindReservePush:
		v = vector.WithCapacity[int](w.Count)
		op = func(i int) { v.PushBack(i) }
	case settings.KindInsertFront:
		v = vector.New[int]()
		op = func(i int) { v.Insert(v.Begin(), i) }
	case settings.KindResize:
		step := max(w.Step, 1)
		v = vector.New[int]()
		op = func(int) { v.Resize(min(v.Len()+step, w.Count)) }
	default:
		return res, errors.Wrapf(ErrUnknownKind, "%q", w.Kind)
	}

	res.Capacities = append(res.Capacities, v.Cap())
	for i := 0; v.Len() < w.Count; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		before := v.Stats()
		op(i)
		res.Ops++

		after := v.Stats()
		if after.Reallocations != before.Reallocations {
			res.Capacities = append(res.Capacities, after.Capacity)
			log.Debug("reallocated",
				zap.Int("size", after.Size),
				zap.Int("old_capacity", before.Capacity),
				zap.Int("new_capacity", after.Capacity),
			)
		}
		if after.Size > after.Capacity {
			return res, errors.Errorf("size %d exceeds capacity %d", after.Size, after.Capacity)
		}
	}

	for _, c := range res.Capacities {
		if utils.IsPowerOfTwo(c) {
			res.PowerOfTwoCaps++
		}
	}
	res.Stats = v.Stats()
	log.Info("workload finished",
		zap.String("kind", w.Kind),
		zap.Int("ops", res.Ops),
		zap.Int("size", res.Stats.Size),
		zap.Int("capacity", res.Stats.Capacity),
		zap.Int("reallocations", res.Stats.Reallocations),
		zap.Int("ref_capacity", res.RefCapacity),
		zap.Ints("capacities", res.Capacities),
		zap.Float64("utilization", res.Stats.Utilization),
	)
	return res, nil
}
