package vlantable

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/henderiw/interval/pkg/rangetable"
	"k8s.io/apimachinery/pkg/labels"
)

type VLANTable interface {
	Get(id int64) (labels.Set, error)
	Claim(id int64, d labels.Set) error
	ClaimRange(start, end int64, d labels.Set) error
	ClaimDynamic(d labels.Set) (int64, error)
	Release(id int64) error
	ReleaseRange(start, end int64) error
	Update(id int64, d labels.Set) error

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)

	GetAll() []rangetable.Entry[int64]
	GetByLabel(selector labels.Selector) []rangetable.Entry[int64]
}

const (
	untaggedVLAN = 0
	defaultVLAN  = 1
	maxVLAN      = 4095
)

var reserved = []rangetable.Entry[int64]{
	rangetable.NewEntry(interval.SingleElement[int64](untaggedVLAN), labels.Set{"type": "untagged", "status": "reserved"}),
	rangetable.NewEntry(interval.SingleElement[int64](defaultVLAN), labels.Set{"type": "default", "status": "reserved"}),
	rangetable.NewEntry(interval.SingleElement[int64](maxVLAN), labels.Set{"type": "reserved", "status": "reserved"}),
}

var ErrNoFreeVLAN = errors.New("no free vlan found")

func New(log logr.Logger) (VLANTable, error) {
	t, err := rangetable.New("vlan",
		interval.Must(interval.Closed[int64](untaggedVLAN, maxVLAN)),
		rangetable.WithLogger[int64](log),
		rangetable.WithInitEntries(reserved...),
		rangetable.WithValidation(func(rng interval.Interval[int64]) error {
			switch {
			case rng.Includes(untaggedVLAN):
				return fmt.Errorf("VLAN %d is the untagged VLAN, cannot be added to the database", untaggedVLAN)
			case rng.Includes(defaultVLAN):
				return fmt.Errorf("VLAN %d is the default VLAN, cannot be added to the database", defaultVLAN)
			case rng.Includes(maxVLAN):
				return fmt.Errorf("VLAN %d is reserved, cannot be added to the database", maxVLAN)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return &vlanTable{table: t}, nil
}

type vlanTable struct {
	table rangetable.Table[int64]
}

func (r *vlanTable) Get(id int64) (labels.Set, error) {
	e, err := r.table.Get(id)
	if err != nil {
		return nil, err
	}
	return e.Labels(), nil
}

func (r *vlanTable) Claim(id int64, d labels.Set) error {
	return r.table.Claim(interval.SingleElement(id), d)
}

func (r *vlanTable) ClaimRange(start, end int64, d labels.Set) error {
	rng, err := interval.Closed(start, end)
	if err != nil {
		return err
	}
	return r.table.Claim(rng, d)
}

// ClaimDynamic claims the lowest free VLAN.
func (r *vlanTable) ClaimDynamic(d labels.Set) (int64, error) {
	// retry when another caller claimed the id first
	for {
		id, err := r.FindFree()
		if err != nil {
			return 0, err
		}
		err = r.Claim(id, d)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, rangetable.ErrClaimed) {
			return 0, err
		}
	}
}

func (r *vlanTable) Release(id int64) error {
	return r.table.Release(interval.SingleElement(id))
}

func (r *vlanTable) ReleaseRange(start, end int64) error {
	rng, err := interval.Closed(start, end)
	if err != nil {
		return err
	}
	return r.table.Release(rng)
}

func (r *vlanTable) Update(id int64, d labels.Set) error {
	if r.table.IsFree(interval.SingleElement(id)) {
		return fmt.Errorf("update failed: vlan %d not claimed", id)
	}
	return r.table.Update(interval.SingleElement(id), d)
}

func (r *vlanTable) Count() int {
	return r.table.Count()
}

func (r *vlanTable) Has(id int64) bool {
	return r.table.Has(id)
}

func (r *vlanTable) IsFree(id int64) bool {
	return r.table.IsFree(interval.SingleElement(id))
}

func (r *vlanTable) FindFree() (int64, error) {
	for _, free := range r.table.FreeRanges() {
		if id, ok := firstID(free); ok {
			return id, nil
		}
	}
	return 0, ErrNoFreeVLAN
}

func (r *vlanTable) GetAll() []rangetable.Entry[int64] {
	return r.table.GetAll()
}

func (r *vlanTable) GetByLabel(selector labels.Selector) []rangetable.Entry[int64] {
	return r.table.GetByLabel(selector)
}

// firstID returns the lowest integer in a bounded interval. A gap such as
// (1, 2) between two claims holds none.
func firstID(i interval.Interval[int64]) (int64, bool) {
	lower, ok := i.LowerLimit()
	if !ok {
		return 0, false
	}
	if !i.IncludesLowerLimit() {
		lower++
	}
	return lower, i.Includes(lower)
}
