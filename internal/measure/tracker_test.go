package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func enter(t *testing.T, tr *Tracker, systolic, diastolic, pulse string) {
	t.Helper()
	require.NoError(t, tr.Set("systolic", systolic))
	require.NoError(t, tr.Set("diastolic", diastolic))
	require.NoError(t, tr.Set("pulse", pulse))
}

func TestNewTrackerStartsEmpty(t *testing.T) {
	tr := NewTracker()
	require.Equal(t, Measurement{}, tr.Draft())
	require.Empty(t, tr.Errors())
	require.Empty(t, tr.Measurements())
	require.Empty(t, tr.Chart().Labels)
	require.Len(t, tr.Chart().Datasets, 3)
}

func TestSaveAcceptsNonZeroReadings(t *testing.T) {
	cases := []Measurement{
		{Systolic: 120, Diastolic: 80, Pulse: 70},
		{Systolic: 0.5, Diastolic: 200, Pulse: 1},
		{Systolic: 145.5, Diastolic: 92.25, Pulse: 101},
	}
	for _, want := range cases {
		tr := NewTracker()
		enter(t, tr, FormatValue(want.Systolic), FormatValue(want.Diastolic), FormatValue(want.Pulse))

		require.True(t, tr.Save())
		require.Equal(t, []Measurement{want}, tr.Measurements())
		require.Equal(t, Measurement{}, tr.Draft())
		require.Empty(t, tr.Errors())
	}
}

func TestSaveRejectsZeroFields(t *testing.T) {
	cases := []struct {
		name    string
		draft   [3]string
		wantErr FieldErrors
	}{
		{
			name:  "empty form",
			draft: [3]string{"", "", ""},
			wantErr: FieldErrors{
				FieldSystolic:  "Systolic pressure is required",
				FieldDiastolic: "Diastolic pressure is required",
				FieldPulse:     "Pulse is required",
			},
		},
		{
			name:    "pulse only",
			draft:   [3]string{"120", "80", "0"},
			wantErr: FieldErrors{FieldPulse: "Pulse is required"},
		},
		{
			name:  "systolic and diastolic",
			draft: [3]string{"0", "0", "66"},
			wantErr: FieldErrors{
				FieldSystolic:  "Systolic pressure is required",
				FieldDiastolic: "Diastolic pressure is required",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()
			enter(t, tr, tc.draft[0], tc.draft[1], tc.draft[2])

			require.False(t, tr.Save())
			require.Empty(t, tr.Measurements())
			require.Equal(t, tc.wantErr, tr.Errors())
		})
	}
}

func TestRejectedSaveKeepsDraft(t *testing.T) {
	tr := NewTracker()
	enter(t, tr, "120", "80", "0")

	require.False(t, tr.Save())
	require.Equal(t, Measurement{Systolic: 120, Diastolic: 80}, tr.Draft())
}

// Known gap: only a literal zero is rejected, so negative and NaN readings
// are saved.
func TestSaveAcceptsNegativeAndNaN(t *testing.T) {
	tr := NewTracker()
	enter(t, tr, "-5", "80", "70")
	require.True(t, tr.Save())

	enter(t, tr, "abc", "80", "70")
	require.True(t, tr.Save())

	got := tr.Measurements()
	require.Len(t, got, 2)
	require.Equal(t, -5.0, got[0].Systolic)
	require.True(t, math.IsNaN(got[1].Systolic))
}

func TestUpdateFieldClearsOnlyThatError(t *testing.T) {
	tr := NewTracker()
	require.False(t, tr.Save())
	require.Len(t, tr.Errors(), 3)

	tr.UpdateField(FieldDiastolic, "80")
	tr.UpdateField(FieldDiastolic, "80")

	require.Equal(t, 80.0, tr.Draft().Diastolic)
	_, ok := tr.Error(FieldDiastolic)
	require.False(t, ok)
	msg, ok := tr.Error(FieldSystolic)
	require.True(t, ok)
	require.Equal(t, "Systolic pressure is required", msg)
}

func TestUpdateFieldClearsErrorEvenWhenValueIsZero(t *testing.T) {
	tr := NewTracker()
	require.False(t, tr.Save())

	tr.UpdateField(FieldPulse, "0")

	_, ok := tr.Error(FieldPulse)
	require.False(t, ok)
	require.False(t, tr.Save())
	_, ok = tr.Error(FieldPulse)
	require.True(t, ok)
}

func TestValidateDoesNotMutateErrors(t *testing.T) {
	tr := NewTracker()
	errs := tr.Validate()
	require.Len(t, errs, 3)
	require.Empty(t, tr.Errors())
}

func TestMeasurementsPreserveInsertionOrder(t *testing.T) {
	tr := NewTracker()
	enter(t, tr, "120", "80", "70")
	require.True(t, tr.Save())
	enter(t, tr, "130", "85", "75")
	require.True(t, tr.Save())

	require.Equal(t, []Measurement{
		{Systolic: 120, Diastolic: 80, Pulse: 70},
		{Systolic: 130, Diastolic: 85, Pulse: 75},
	}, tr.Measurements())
	require.Equal(t, 2, tr.Len())
}

func TestMeasurementsReturnsCopy(t *testing.T) {
	tr := NewTracker()
	enter(t, tr, "120", "80", "70")
	require.True(t, tr.Save())

	list := tr.Measurements()
	list[0].Systolic = 999

	require.Equal(t, 120.0, tr.Measurements()[0].Systolic)
}

func TestSaveRecomputesChart(t *testing.T) {
	tr := NewTracker()
	enter(t, tr, "120", "80", "70")
	require.True(t, tr.Save())
	enter(t, tr, "118", "76", "68")
	require.True(t, tr.Save())

	chart := tr.Chart()
	require.Equal(t, []string{"Measurement 1", "Measurement 2"}, chart.Labels)
	require.Equal(t, []float64{120, 118}, chart.Datasets[0].Data)
	require.Equal(t, []float64{80, 76}, chart.Datasets[1].Data)
	require.Equal(t, []float64{70, 68}, chart.Datasets[2].Data)
}

func TestSetRejectsUnknownField(t *testing.T) {
	tr := NewTracker()

	err := tr.Set("puls", "70")
	require.ErrorIs(t, err, ErrUnknownField)
	require.Contains(t, err.Error(), `did you mean "pulse"`)
	require.Equal(t, Measurement{}, tr.Draft())

	err = tr.Set("heartbeat", "70")
	require.ErrorIs(t, err, ErrUnknownField)
	require.Contains(t, err.Error(), "expected systolic|diastolic|pulse")
}
