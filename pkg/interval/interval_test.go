package interval_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/interval/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closed(lower, upper int) interval.Interval[int] {
	return interval.Must(interval.Closed(lower, upper))
}

func open(lower, upper int) interval.Interval[int] {
	return interval.Must(interval.Open(lower, upper))
}

func over(lower int, lowerIncluded bool, upper int, upperIncluded bool) interval.Interval[int] {
	return interval.Must(interval.Over(lower, lowerIncluded, upper, upperIncluded))
}

func toStrings[T any](is []interval.Interval[T]) []string {
	out := make([]string, 0, len(is))
	for _, i := range is {
		out = append(out, i.String())
	}
	return out
}

func TestConstructors(t *testing.T) {
	cases := map[string]struct {
		i        interval.Interval[int]
		want     string
		open     bool
		closed   bool
		halfOpen bool
	}{
		"Closed":   {i: closed(1, 10), want: "[1, 10]", closed: true},
		"Open":     {i: open(1, 10), want: "(1, 10)", open: true},
		"Over":     {i: over(1, true, 10, false), want: "[1, 10)", halfOpen: true},
		"AndMore":  {i: interval.AndMore(3), want: "[3, +∞)", halfOpen: true},
		"MoreThan": {i: interval.MoreThan(3), want: "(3, +∞)", open: true},
		"Under":    {i: interval.Under(3), want: "(-∞, 3)", open: true},
		"UpTo":     {i: interval.UpTo(3), want: "(-∞, 3]", halfOpen: true},
		"All":      {i: interval.All[int](), want: "(-∞, +∞)", open: true},
		"Single":   {i: interval.SingleElement(5), want: "[5, 5]", closed: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, tc.i.IsValid())
			assert.Equal(t, tc.want, tc.i.String())
			assert.Equal(t, tc.open, tc.i.IsOpen())
			assert.Equal(t, tc.closed, tc.i.IsClosed())
			assert.Equal(t, tc.halfOpen, tc.i.IsHalfOpen())
		})
	}
}

func TestDegenerateConstruction(t *testing.T) {
	empty := over(5, false, 5, false)
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsSingleElement())
	assert.False(t, empty.Includes(5))

	for _, i := range []interval.Interval[int]{
		over(5, false, 5, true),
		over(5, true, 5, false),
		over(5, true, 5, true),
	} {
		assert.True(t, i.IsSingleElement(), i.String())
		assert.False(t, i.IsEmpty(), i.String())
		assert.True(t, i.IsClosed(), i.String())
		assert.True(t, i.Includes(5), i.String())
		assert.Equal(t, "[5, 5]", i.String())
	}
}

func TestBetweenInvalid(t *testing.T) {
	cases := map[string]struct {
		lower interval.Limit[int]
		upper interval.Limit[int]
	}{
		"LowerAboveUpper": {lower: interval.Lower(true, 10), upper: interval.Upper(true, 1)},
		"SwappedSides":    {lower: interval.Upper(true, 1), upper: interval.Lower(true, 10)},
		"UnboundedSwap":   {lower: interval.UnboundedUpper[int](), upper: interval.UnboundedLower[int]()},
		"ZeroLimits":      {},
		"ZeroUpper":       {lower: interval.Lower(true, 1)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			i, err := interval.Between(tc.lower, tc.upper)
			require.Error(t, err)
			assert.True(t, errors.Is(err, interval.ErrInvalidArgument))
			assert.False(t, i.IsValid())
		})
	}

	_, err := interval.Closed(10, 1)
	assert.ErrorIs(t, err, interval.ErrInvalidArgument)
	assert.Panics(t, func() { interval.Must(interval.Open(3, 2)) })
}

func TestIncludes(t *testing.T) {
	for _, bounds := range [][2]int{{1, 10}, {-5, 5}, {0, 1}} {
		lower, upper := bounds[0], bounds[1]
		assert.True(t, closed(lower, upper).Includes(lower))
		assert.True(t, closed(lower, upper).Includes(upper))
		assert.False(t, open(lower, upper).Includes(lower))
		assert.False(t, open(lower, upper).Includes(upper))
	}

	cases := map[string]struct {
		i    interval.Interval[int]
		x    int
		want bool
	}{
		"Inside":          {i: closed(1, 10), x: 5, want: true},
		"BelowLower":      {i: closed(1, 10), x: 0},
		"AboveUpper":      {i: closed(1, 10), x: 11},
		"HalfOpenUpper":   {i: over(1, true, 10, false), x: 10},
		"UnboundedBelow":  {i: interval.UpTo(10), x: -1 << 40, want: true},
		"UnboundedAbove":  {i: interval.MoreThan(10), x: 1 << 40, want: true},
		"MoreThanBorder":  {i: interval.MoreThan(10), x: 10},
		"AllIncludesZero": {i: interval.All[int](), x: 0, want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.i.Includes(tc.x))
		})
	}

	i := over(1, false, 10, true)
	assert.True(t, i.IsAbove(1))
	assert.False(t, i.IsAbove(2))
	assert.True(t, i.IsBelow(11))
	assert.False(t, i.IsBelow(10))
}

func TestCovers(t *testing.T) {
	cases := map[string]struct {
		i, other interval.Interval[int]
		want     bool
	}{
		"Same":                  {i: closed(1, 10), other: closed(1, 10), want: true},
		"Inside":                {i: closed(1, 10), other: closed(3, 5), want: true},
		"OpenInsideOpen":        {i: open(1, 10), other: open(1, 10), want: true},
		"ClosedInsideOpen":      {i: open(1, 10), other: closed(1, 10)},
		"SharedOpenBoundary":    {i: over(1, false, 10, true), other: over(1, false, 5, true), want: true},
		"StickingOut":           {i: closed(1, 10), other: closed(5, 15)},
		"Disjoint":              {i: closed(1, 10), other: closed(20, 30)},
		"UnboundedCoversFinite": {i: interval.AndMore(0), other: closed(5, 15), want: true},
		"FiniteCoversUnbounded": {i: closed(0, 100), other: interval.AndMore(5)},
		"AllCoversAll":          {i: interval.All[int](), other: interval.All[int](), want: true},
		"SingleInside":          {i: closed(1, 10), other: interval.SingleElement(10), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.i.Covers(tc.other))
		})
	}
}

func TestIntersects(t *testing.T) {
	cases := map[string]struct {
		a, b interval.Interval[int]
		want bool
	}{
		"Overlap":             {a: closed(1, 10), b: closed(5, 15), want: true},
		"TouchingClosed":      {a: closed(1, 5), b: closed(5, 10), want: true},
		"TouchingHalfOpen":    {a: over(1, true, 5, false), b: closed(5, 10)},
		"TouchingOtherOpen":   {a: closed(1, 5), b: over(5, false, 10, true)},
		"Disjoint":            {a: closed(1, 4), b: closed(5, 10)},
		"Nested":              {a: closed(1, 10), b: open(4, 5), want: true},
		"BothUnboundedBelow":  {a: interval.UpTo(1), b: interval.Under(-100), want: true},
		"BothUnboundedAbove":  {a: interval.AndMore(1), b: interval.MoreThan(100), want: true},
		"OppositeUnbounded":   {a: interval.Under(1), b: interval.AndMore(1)},
		"OppositeOverlap":     {a: interval.UpTo(1), b: interval.AndMore(1), want: true},
		"EmptyInside":         {a: closed(1, 10), b: open(5, 5)},
		"SingleElementInside": {a: closed(1, 10), b: interval.SingleElement(5), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(tc.a))
		})
	}
}

func TestIntersect(t *testing.T) {
	cases := map[string]struct {
		a, b      interval.Interval[int]
		want      string
		wantEmpty bool
	}{
		"Overlap":         {a: closed(1, 10), b: over(5, false, 15, true), want: "(5, 10]"},
		"Nested":          {a: closed(1, 10), b: closed(3, 4), want: "[3, 4]"},
		"TouchingClosed":  {a: closed(1, 5), b: closed(5, 10), want: "[5, 5]"},
		"TouchingOpen":    {a: over(1, true, 5, false), b: closed(5, 10), want: "(5, 5)", wantEmpty: true},
		"Disjoint":        {a: closed(1, 4), b: closed(6, 10), want: "(1, 1)", wantEmpty: true},
		"Unbounded":       {a: interval.UpTo(10), b: interval.MoreThan(2), want: "(2, 10]"},
		"BothUnbounded":   {a: interval.All[int](), b: interval.Under(3), want: "(-∞, 3)"},
		"SharedOpenLower": {a: over(1, false, 10, true), b: closed(1, 10), want: "(1, 10]"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			assert.Equal(t, tc.want, got.String())
			assert.Equal(t, tc.wantEmpty, got.IsEmpty())
		})
	}
}

func TestIntersectIdempotent(t *testing.T) {
	for _, i := range []interval.Interval[int]{
		closed(1, 10),
		open(1, 10),
		over(1, true, 10, false),
		interval.SingleElement(3),
		interval.AndMore(3),
		interval.Under(3),
		interval.All[int](),
	} {
		got := i.Intersect(i)
		assert.True(t, got.Equal(i), "%s ∩ %s = %s", i, i, got)
		assert.Equal(t, i.String(), got.String())
	}
}

func TestGap(t *testing.T) {
	cases := map[string]struct {
		a, b      interval.Interval[int]
		want      string
		wantEmpty bool
	}{
		"Disjoint":         {a: closed(1, 5), b: closed(10, 20), want: "(5, 10)"},
		"DisjointOpen":     {a: open(1, 5), b: open(10, 20), want: "[5, 10]"},
		"Adjacent":         {a: closed(5, 10), b: over(10, false, 12, true), wantEmpty: true, want: "(10, 10)"},
		"AdjacentOpenBoth": {a: over(1, true, 5, false), b: over(5, false, 10, true), want: "[5, 5]"},
		"Overlap":          {a: closed(1, 10), b: closed(5, 15), wantEmpty: true, want: "(1, 1)"},
		"Unbounded":        {a: interval.Under(0), b: interval.AndMore(10), want: "[0, 10)"},
		"EmptyOutside":     {a: open(25, 25), b: closed(10, 20), want: "(20, 25]"},
		"EmptyInside":      {a: open(15, 15), b: closed(10, 20), wantEmpty: true, want: "(15, 15)"},
		"EmptyTouching":    {a: open(5, 5), b: over(5, false, 10, true), want: "[5, 5]"},
		"BothEmpty":        {a: open(1, 1), b: open(7, 7), want: "[1, 7]"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ab := tc.a.Gap(tc.b)
			ba := tc.b.Gap(tc.a)
			assert.Equal(t, tc.want, ab.String())
			assert.Equal(t, tc.wantEmpty, ab.IsEmpty())
			assert.True(t, ab.Equal(ba), "%s != %s", ab, ba)
		})
	}
}

func TestComplementRelativeTo(t *testing.T) {
	cases := map[string]struct {
		i, other interval.Interval[int]
		want     []string
	}{
		"Disjoint":       {i: closed(20, 30), other: closed(1, 10), want: []string{"[1, 10]"}},
		"Covering":       {i: closed(0, 100), other: closed(1, 10), want: []string{}},
		"Same":           {i: closed(1, 10), other: closed(1, 10), want: []string{}},
		"StrictlyInside": {i: closed(5, 8), other: closed(1, 10), want: []string{"[1, 5)", "(8, 10]"}},
		"OpenInside":     {i: open(5, 8), other: closed(1, 10), want: []string{"[1, 5]", "[8, 10]"}},
		"OverlapLeft":    {i: closed(0, 5), other: closed(1, 10), want: []string{"(5, 10]"}},
		"OverlapRight":   {i: closed(5, 20), other: closed(1, 10), want: []string{"[1, 5)"}},
		"SharedBoundary": {i: open(1, 10), other: closed(1, 10), want: []string{"[1, 1]", "[10, 10]"}},
		"OpenOther":      {i: closed(1, 10), other: open(1, 10), want: []string{}},
		"InsideAll":      {i: closed(5, 8), other: interval.All[int](), want: []string{"(-∞, 5)", "(8, +∞)"}},
		"UnboundedLeft":  {i: interval.UpTo(5), other: closed(1, 10), want: []string{"(5, 10]"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := toStrings(tc.i.ComplementRelativeTo(tc.other))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	// Unbounded lower intervals sharing an upper limit: the narrower one
	// sorts first, the two unbounded ones tie.
	got := []interval.Interval[int]{
		interval.Under(20),
		interval.UpTo(20),
		over(10, false, 20, true),
	}
	slices.SortStableFunc(got, interval.Interval[int].Compare)
	if diff := cmp.Diff([]string{"(10, 20]", "(-∞, 20)", "(-∞, 20]"}, toStrings(got)); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	got = []interval.Interval[int]{
		closed(0, 30),
		open(7, 7),
		over(10, false, 20, true),
		closed(15, 20),
		interval.AndMore(0),
	}
	slices.SortStableFunc(got, interval.Interval[int].Compare)
	if diff := cmp.Diff([]string{"(7, 7)", "[15, 20]", "(10, 20]", "[0, 30]", "[0, +∞)"}, toStrings(got)); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	assert.Equal(t, 0, open(1, 1).Compare(open(9, 9)))
	assert.Equal(t, 0, closed(1, 5).Compare(open(1, 5)))
}

func TestEqual(t *testing.T) {
	cases := map[string]struct {
		a, b interval.Interval[int]
		want bool
	}{
		"BothEmpty":          {a: open(1, 1), b: open(7, 7), want: true},
		"OneEmpty":           {a: open(1, 1), b: closed(1, 1)},
		"BothSingle":         {a: interval.SingleElement(3), b: over(3, false, 3, true), want: true},
		"DifferentSingle":    {a: interval.SingleElement(3), b: interval.SingleElement(4)},
		"OneSingle":          {a: interval.SingleElement(3), b: closed(3, 4)},
		"Same":               {a: closed(1, 5), b: closed(1, 5), want: true},
		"OpennessIgnored":    {a: closed(1, 5), b: open(1, 5), want: true},
		"DifferentUpper":     {a: closed(1, 5), b: closed(1, 6)},
		"UnboundedSameUpper": {a: interval.Under(5), b: interval.UpTo(5), want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, i := range []interval.Interval[int]{
		closed(1, 10),
		open(1, 10),
		over(1, false, 10, true),
		over(4, false, 4, true),
		open(4, 4),
	} {
		lower, _ := i.LowerLimit()
		upper, _ := i.UpperLimit()
		got, err := interval.Over(lower, i.IncludesLowerLimit(), upper, i.IncludesUpperLimit())
		require.NoError(t, err)
		assert.True(t, got.Equal(i))
		assert.Equal(t, i.String(), got.String())

		same, err := i.NewOfSameType(lower, i.IncludesLowerLimit(), upper, i.IncludesUpperLimit())
		require.NoError(t, err)
		assert.Equal(t, i.String(), same.String())
	}
}

func TestEmptyOfSameType(t *testing.T) {
	cases := map[string]struct {
		i    interval.Interval[int]
		want string
	}{
		"Finite":         {i: closed(3, 9), want: "(3, 3)"},
		"UnboundedBelow": {i: interval.UpTo(9), want: "(9, 9)"},
		"UnboundedBoth":  {i: interval.All[int](), want: "(0, 0)"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.i.EmptyOfSameType()
			assert.True(t, got.IsEmpty())
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestZeroIntervalArgument(t *testing.T) {
	var zero interval.Interval[int]
	assert.False(t, zero.IsValid())
	i := closed(1, 2)
	assert.Panics(t, func() { i.Intersects(zero) })
	assert.Panics(t, func() { i.Intersect(zero) })
	assert.Panics(t, func() { i.Gap(zero) })
	assert.Panics(t, func() { i.Covers(zero) })
	assert.Panics(t, func() { i.ComplementRelativeTo(zero) })
	assert.Panics(t, func() { i.Compare(zero) })
	assert.Panics(t, func() { i.Equal(zero) })
}

func TestLimitCompare(t *testing.T) {
	cases := map[string]struct {
		a, b interval.Limit[int]
		want int
	}{
		"OpennessIgnored":      {a: interval.Lower(true, 5), b: interval.Upper(false, 5), want: 0},
		"ByValue":              {a: interval.Lower(true, 4), b: interval.Lower(true, 5), want: -1},
		"UnboundedLowerMin":    {a: interval.UnboundedLower[int](), b: interval.Lower(true, -1000), want: -1},
		"UnboundedUpperMax":    {a: interval.UnboundedUpper[int](), b: interval.Upper(true, 1000), want: 1},
		"UnboundedLowerEqual":  {a: interval.UnboundedLower[int](), b: interval.UnboundedLower[int](), want: 0},
		"UnboundedLowerUpper":  {a: interval.UnboundedLower[int](), b: interval.UnboundedUpper[int](), want: -1},
		"FiniteVsUnboundedLow": {a: interval.Upper(true, 3), b: interval.UnboundedLower[int](), want: 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a))
			assert.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
		})
	}

	l := interval.Lower(false, 7)
	v, ok := l.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, l.IsOpen())
	assert.True(t, l.IsLower())
	assert.False(t, interval.UnboundedUpper[int]().IsBounded())
	assert.False(t, interval.UnboundedUpper[int]().IsClosed())
}

func TestDomain(t *testing.T) {
	d := interval.NewDomain(time.Time.Compare)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	day, err := d.Over(start, true, end, false)
	require.NoError(t, err)
	assert.True(t, day.Includes(start))
	assert.True(t, day.Includes(start.Add(23*time.Hour)))
	assert.False(t, day.Includes(end))

	afterNoon := d.AndMore(start.Add(12 * time.Hour))
	got := day.Intersect(afterNoon)
	lower, _ := got.LowerLimit()
	upper, _ := got.UpperLimit()
	assert.Equal(t, start.Add(12*time.Hour), lower)
	assert.Equal(t, end, upper)
	assert.True(t, got.IncludesLowerLimit())
	assert.False(t, got.IncludesUpperLimit())

	_, err = d.Closed(end, start)
	assert.ErrorIs(t, err, interval.ErrInvalidArgument)
}

func TestNilCompareFunc(t *testing.T) {
	assert.PanicsWithError(t, "invalid argument: nil compare func", func() {
		interval.NewDomain[int](nil)
	})
}
